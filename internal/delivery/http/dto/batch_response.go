package dto

import (
	"jobfit/internal/domain/match"
	"jobfit/internal/pipeline"

	"github.com/google/uuid"
)

type BatchItemResponse struct {
	JobID   uuid.UUID   `json:"job_id"`
	MatchID *uuid.UUID  `json:"match_id,omitempty"`
	Score   *int        `json:"score,omitempty"`
	Grade   match.Grade `json:"grade,omitempty"`
	Error   string      `json:"error,omitempty"`
	Skipped bool        `json:"skipped,omitempty"`
}

type BatchResponse struct {
	UserID     uuid.UUID           `json:"user_id"`
	Total      int                 `json:"total"`
	Succeeded  int                 `json:"succeeded"`
	Failed     int                 `json:"failed"`
	Skipped    int                 `json:"skipped"`
	DurationMS int64               `json:"duration_ms"`
	Items      []BatchItemResponse `json:"items"`
}

type BatchQueuedResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Queued bool      `json:"queued"`
}

func NewBatchResponse(s pipeline.BatchSummary) BatchResponse {
	out := BatchResponse{
		UserID:     s.UserID,
		Total:      s.Total,
		Succeeded:  s.Succeeded,
		Failed:     s.Failed,
		Skipped:    s.Skipped,
		DurationMS: s.Duration.Milliseconds(),
		Items:      make([]BatchItemResponse, 0, len(s.Items)),
	}
	for _, it := range s.Items {
		item := BatchItemResponse{JobID: it.JobID, Skipped: it.Skipped}
		switch {
		case it.Result != nil:
			id, score := it.Result.ID, it.Result.OverallScore
			item.MatchID, item.Score = &id, &score
			item.Grade = it.Result.Metadata.Grade
		case it.Err != nil:
			item.Error = it.Err.Error()
		}
		out.Items = append(out.Items, item)
	}
	return out
}
