package ws

import (
	"encoding/json"
	"time"
)

// RankingCompletedEvent tells connected viewers that a ranking task
// finished and the shortlist for the job should be refetched.
type RankingCompletedEvent struct {
	Type        string `json:"type"`
	JobID       string `json:"job_id"`
	TaskID      string `json:"task_id"`
	RankedCount int    `json:"ranked_count"`
	FailedCount int    `json:"failed_count"`
	Timestamp   string `json:"timestamp"`
}

func NotifyRankingCompleted(h *Hub, jobID, taskID string, ranked, failed int) {
	if h == nil {
		return
	}

	evt := RankingCompletedEvent{
		Type:        "ranking_completed",
		JobID:       jobID,
		TaskID:      taskID,
		RankedCount: ranked,
		FailedCount: failed,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
