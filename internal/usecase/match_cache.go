package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MatchCache is the result cache. Implementations bypass silently when the
// backing store is down; Available reports that state.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPattern(ctx context.Context, pattern string) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Available() bool
}

// matchCacheKey addresses a cached result. The digest covers every input
// that can change the score.
func matchCacheKey(userID, jobID uuid.UUID, inputs ...any) (string, error) {
	h := sha256.New()
	enc := json.NewEncoder(h)
	for _, in := range inputs {
		if err := enc.Encode(in); err != nil {
			return "", err
		}
	}
	return "match:user:" + userID.String() + ":job:" + jobID.String() + ":" + hex.EncodeToString(h.Sum(nil))[:32], nil
}

func userMatchPattern(userID uuid.UUID) string {
	return "match:user:" + userID.String() + ":*"
}

func batchLockKey(userID uuid.UUID) string {
	return "match:batch:lock:" + userID.String()
}
