package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"jediarchives/internal/model"
	"jediarchives/internal/service"
)

type MockArchiveService struct {
	mock.Mock
}

func (m *MockArchiveService) Create(ctx context.Context, route model.Route) (*model.Archive, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Archive), args.Error(1)
}

func (m *MockArchiveService) List(ctx context.Context, limit, offset int) (*service.ArchiveListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ArchiveListResult), args.Error(1)
}

func (m *MockArchiveService) Get(ctx context.Context, id string) (*model.Archive, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Archive), args.Error(1)
}

func (m *MockArchiveService) Open(ctx context.Context, id string) (io.ReadCloser, *model.Archive, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*model.Archive), args.Error(2)
}

func (m *MockArchiveService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
