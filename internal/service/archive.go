package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"jediarchives/internal/model"
	"jediarchives/internal/repository"
	"jediarchives/internal/storage"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("not found")
)

const archiveContentType = "application/json"

// ArchiveListResult is the service-level DTO for paginated archives.
type ArchiveListResult struct {
	Items []model.Archive `json:"data"`
	Total int             `json:"total"`
}

// ArchiveService defines the use cases for screen snapshots.
type ArchiveService interface {
	// Create renders the screen at route, uploads its JSON to object storage and saves metadata to DB.
	// The object is removed again if the DB save fails.
	Create(ctx context.Context, route model.Route) (*model.Archive, error)

	// List returns archives using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*ArchiveListResult, error)

	// Get returns a single archive by its ID, with a presigned download URL when configured.
	Get(ctx context.Context, id string) (*model.Archive, error)

	// Open streams the stored snapshot. The caller closes the reader.
	Open(ctx context.Context, id string) (io.ReadCloser, *model.Archive, error)

	// Delete removes an archive by ID from both storage and repository.
	Delete(ctx context.Context, id string) error
}

type archiveService struct {
	screens   ScreenService
	store     storage.Storage
	repo      repository.ArchiveRepository
	urlExpiry time.Duration
}

// NewArchiveService constructs a new ArchiveService. A zero urlExpiry disables presigned URLs.
func NewArchiveService(screens ScreenService, store storage.Storage, repo repository.ArchiveRepository, urlExpiry time.Duration) ArchiveService {
	return &archiveService{screens: screens, store: store, repo: repo, urlExpiry: urlExpiry}
}

func (s *archiveService) Create(ctx context.Context, route model.Route) (*model.Archive, error) {
	screen, err := s.screens.Render(ctx, route)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(screen)
	if err != nil {
		return nil, fmt.Errorf("encode screen: %w", err)
	}

	id := uuid.New().String()
	key := filepath.ToSlash(filepath.Join("archives", string(route.Screen), id+".json"))

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: archiveContentType,
		Metadata: map[string]string{
			"screen":     string(route.Screen),
			"subject-id": route.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	archive := &model.Archive{
		ID:          id,
		Screen:      string(route.Screen),
		SubjectID:   route.ID,
		Title:       screen.Title,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, archive)
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// List returns paginated archives without exposing repository types.
func (s *archiveService) List(ctx context.Context, limit, offset int) (*ArchiveListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ArchiveListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *archiveService) Get(ctx context.Context, id string) (*model.Archive, error) {
	archive, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.urlExpiry > 0 {
		u, err := s.store.PresignGet(ctx, archive.StoragePath, s.urlExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign: %w", err)
		}
		archive.DownloadURL = u
	}
	return archive, nil
}

func (s *archiveService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Archive, error) {
	archive, err := s.find(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, _, err := s.store.Get(ctx, archive.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read storage: %w", err)
	}
	return rc, archive, nil
}

// Delete removes an archive from storage, then deletes its record.
func (s *archiveService) Delete(ctx context.Context, id string) error {
	archive, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	// Storage first; a failed delete keeps the row so the object is still reachable.
	if err := s.store.Delete(ctx, archive.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *archiveService) find(ctx context.Context, id string) (*model.Archive, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	archive, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return archive, nil
}
