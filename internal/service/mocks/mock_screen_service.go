package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jediarchives/internal/model"
)

type MockScreenService struct {
	mock.Mock
}

func (m *MockScreenService) Films(ctx context.Context) (*model.Screen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screen), args.Error(1)
}

func (m *MockScreenService) FilmDetail(ctx context.Context, id string) (*model.Screen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screen), args.Error(1)
}

func (m *MockScreenService) CharacterDetail(ctx context.Context, id string) (*model.Screen, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screen), args.Error(1)
}

func (m *MockScreenService) Render(ctx context.Context, route model.Route) (*model.Screen, error) {
	args := m.Called(ctx, route)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Screen), args.Error(1)
}
