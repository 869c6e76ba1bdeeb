package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobfit/internal/domain/match"

	"github.com/google/uuid"
)

var ErrMalformedMessage = errors.New("malformed message")

// BatchRequest asks a worker to score every saved posting of a user.
type BatchRequest struct {
	UserID      uuid.UUID        `json:"user_id"`
	Weights     *match.WeightMap `json:"weights,omitempty"`
	RequestedAt time.Time        `json:"requested_at"`
}

func EncodeBatchRequest(r BatchRequest) ([]byte, error) {
	if r.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id is required", ErrMalformedMessage)
	}
	return json.Marshal(r)
}

func DecodeBatchRequest(body []byte) (BatchRequest, error) {
	var r BatchRequest
	if err := json.Unmarshal(body, &r); err != nil {
		return BatchRequest{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if r.UserID == uuid.Nil {
		return BatchRequest{}, fmt.Errorf("%w: user_id is required", ErrMalformedMessage)
	}
	return r, nil
}
