package repository

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gokatarajesh/trivia-api/internal/db/store"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]store.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]store.Category), args.Error(1)
}

func (m *mockCategoryStore) GetCategory(ctx context.Context, id int32) (store.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(store.Category), args.Error(1)
}

func TestCategoryRepository_List(t *testing.T) {
	s := new(mockCategoryStore)
	repo := NewCategoryRepository(s)

	expect := []store.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}
	s.On("ListCategories", mock.Anything).Return(expect, nil)

	got, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expect, got)
	s.AssertExpectations(t)
}

func TestCategoryRepository_GetTranslatesNoRows(t *testing.T) {
	s := new(mockCategoryStore)
	repo := NewCategoryRepository(s)

	s.On("GetCategory", mock.Anything, int32(999)).Return(store.Category{}, pgx.ErrNoRows)
	s.On("GetCategory", mock.Anything, int32(1)).Return(store.Category{ID: 1, Type: "Science"}, nil)

	_, err := repo.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := repo.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "Science", got.Type)
	s.AssertExpectations(t)
}
