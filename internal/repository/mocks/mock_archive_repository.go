package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jediarchives/internal/model"
	"jediarchives/internal/repository"
)

type MockArchiveRepository struct {
	mock.Mock
}

func (m *MockArchiveRepository) Create(ctx context.Context, a *model.Archive) (*model.Archive, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Archive), args.Error(1)
}

func (m *MockArchiveRepository) FindByID(ctx context.Context, id string) (*model.Archive, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Archive), args.Error(1)
}

func (m *MockArchiveRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Archive], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Archive]), args.Error(1)
}

func (m *MockArchiveRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
