package ws

import (
	"encoding/json"
	"time"

	"jobfit/internal/pipeline"
)

const EventBatchProgress = "batch_progress"

type BatchProgressEvent struct {
	Type      string            `json:"type"`
	Progress  pipeline.Progress `json:"progress"`
	Timestamp string            `json:"timestamp"`
}

// PublishProgress broadcasts a batch progress event to the user's subscribers.
func (h *Hub) PublishProgress(p pipeline.Progress) {
	if h == nil {
		return
	}
	evt := BatchProgressEvent{
		Type:      EventBatchProgress,
		Progress:  p,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(p.UserID, b)
}
