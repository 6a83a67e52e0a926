package job

import (
	"time"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/domain/priority"
)

type Job struct {
	ID              uuid.UUID
	Title           string
	Keywords        []string
	MinExperience   float64
	SkillPriorities []priority.SkillPriority
	IsActive        bool
	CreatedAt       time.Time
}
