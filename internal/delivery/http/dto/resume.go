package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/resume"
)

type ResumeResponse struct {
	ID         uuid.UUID `json:"id"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func NewResumeResponse(r resume.Resume) ResumeResponse {
	return ResumeResponse{
		ID:         r.ID,
		Filename:   r.Filename,
		SizeBytes:  r.SizeBytes,
		UploadedAt: r.UploadedAt,
	}
}

func NewResumeListResponse(items []resume.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewResumeResponse(r))
	}
	return out
}
