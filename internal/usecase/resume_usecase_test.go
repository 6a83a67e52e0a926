package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Mal-1702/ats-backend/internal/config"
	"github.com/Mal-1702/ats-backend/internal/domain/resume"
	"github.com/Mal-1702/ats-backend/internal/infrastructure/storage"
	"github.com/Mal-1702/ats-backend/internal/repository"
)

type trackingResumeRepo struct {
	byID map[uuid.UUID]resume.Resume
}

func newTrackingResumeRepo() *trackingResumeRepo {
	return &trackingResumeRepo{byID: make(map[uuid.UUID]resume.Resume)}
}

func (m *trackingResumeRepo) Create(_ context.Context, r resume.Resume) error {
	m.byID[r.ID] = r
	return nil
}

func (m *trackingResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	r, ok := m.byID[id]
	if !ok {
		return resume.Resume{}, repository.ErrResumeNotFound
	}
	return r, nil
}

func (m *trackingResumeRepo) List(_ context.Context) ([]resume.Resume, error) {
	out := make([]resume.Resume, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, r)
	}
	return out, nil
}

func (m *trackingResumeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrResumeNotFound
	}
	delete(m.byID, id)
	return nil
}

func testStore(t *testing.T) *storage.LocalStore {
	t.Helper()
	store, err := storage.NewLocalStore(config.UploadConfig{
		Dir:               t.TempDir(),
		MaxSizeMB:         1,
		AllowedExtensions: []string{"pdf", "docx"},
	})
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}
	return store
}

func TestResumeUsecase_Upload_StoresFileAndRow(t *testing.T) {
	repo := newTrackingResumeRepo()
	uc := NewResumeUsecase(repo, testStore(t), nil)

	content := "plain bytes standing in for a pdf"
	rec, err := uc.Upload(context.Background(), "alice.pdf", int64(len(content)), strings.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Filename != "alice.pdf" {
		t.Fatalf("unexpected filename %q", rec.Filename)
	}
	if _, err := os.Stat(rec.StoredPath); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 resume, got %d", len(items))
	}
}

func TestResumeUsecase_Upload_RejectsDisallowedExtension(t *testing.T) {
	uc := NewResumeUsecase(newTrackingResumeRepo(), testStore(t), nil)

	_, err := uc.Upload(context.Background(), "malware.exe", 4, strings.NewReader("bits"))
	if !errors.Is(err, storage.ErrExtensionNotAllowed) {
		t.Fatalf("expected ErrExtensionNotAllowed, got %v", err)
	}
}

func TestResumeUsecase_Delete_RemovesFileAndRow(t *testing.T) {
	repo := newTrackingResumeRepo()
	uc := NewResumeUsecase(repo, testStore(t), nil)

	content := "plain bytes standing in for a pdf"
	rec, err := uc.Upload(context.Background(), "bob.docx", int64(len(content)), strings.NewReader(content))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if err := uc.Delete(context.Background(), rec.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := os.Stat(rec.StoredPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected stored file removed, got %v", err)
	}
	if err := uc.Delete(context.Background(), rec.ID); !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound on second delete, got %v", err)
	}
}
