// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres).
package repository

import (
	"context"

	"jediarchives/internal/model"
)

// ArchiveRepository defines data access for archive metadata using SQL queries only.
type ArchiveRepository interface {
	// Create inserts a new archive record and returns the stored row.
	Create(ctx context.Context, a *model.Archive) (*model.Archive, error)

	// FindByID returns an archive by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Archive, error)

	// List returns a page of archives, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Archive], error)

	// Delete removes an archive by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
