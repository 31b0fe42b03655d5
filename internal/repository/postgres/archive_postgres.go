package postgres

import (
	"context"
	"database/sql"

	"jediarchives/internal/model"
	"jediarchives/internal/repository"
)

// ArchivePostgres is a PostgreSQL implementation of repository.ArchiveRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ArchivePostgres struct {
	db *sql.DB
}

// NewArchivePostgres creates a new ArchivePostgres repository.
func NewArchivePostgres(db *sql.DB) *ArchivePostgres {
	return &ArchivePostgres{db: db}
}

var _ repository.ArchiveRepository = (*ArchivePostgres)(nil)

const archiveColumns = `id, screen, subject_id, title, storage_path, size, content_type, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanArchive(s scanner) (*model.Archive, error) {
	var a model.Archive
	if err := s.Scan(
		&a.ID,
		&a.Screen,
		&a.SubjectID,
		&a.Title,
		&a.StoragePath,
		&a.Size,
		&a.ContentType,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new archive row and returns the stored record.
func (r *ArchivePostgres) Create(ctx context.Context, a *model.Archive) (*model.Archive, error) {
	const q = `
		INSERT INTO archives (` + archiveColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + archiveColumns

	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.Screen,
		a.SubjectID,
		a.Title,
		a.StoragePath,
		a.Size,
		a.ContentType,
		a.CreatedAt,
	)
	return scanArchive(row)
}

// FindByID fetches a single archive by its ID.
func (r *ArchivePostgres) FindByID(ctx context.Context, id string) (*model.Archive, error) {
	const q = `
		SELECT ` + archiveColumns + `
		FROM archives
		WHERE id = $1
	`
	return scanArchive(r.db.QueryRowContext(ctx, q, id))
}

// List returns archives using LIMIT/OFFSET pagination and a total count.
func (r *ArchivePostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Archive], error) {
	const qCount = `SELECT COUNT(*) FROM archives`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + archiveColumns + `
		FROM archives
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Archive, 0)
	for rows.Next() {
		a, err := scanArchive(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Archive]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes an archive by ID. It does not return an error if the row does not exist.
func (r *ArchivePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM archives WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
