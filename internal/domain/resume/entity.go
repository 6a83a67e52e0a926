package resume

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID         uuid.UUID
	Filename   string
	StoredPath string
	SizeBytes  int64
	UploadedAt time.Time
}
