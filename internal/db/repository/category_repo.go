package repository

import (
	"context"

	"github.com/gokatarajesh/trivia-api/internal/db/store"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]store.Category, error)
	GetCategory(ctx context.Context, id int32) (store.Category, error)
}

// CategoryRepository exposes read access to the immutable category table.
type CategoryRepository struct {
	store categoryStore
}

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]store.Category, error) {
	return r.store.ListCategories(ctx)
}

// Get fetches one category, returning ErrNotFound when the id is unknown.
func (r *CategoryRepository) Get(ctx context.Context, id int32) (store.Category, error) {
	c, err := r.store.GetCategory(ctx, id)
	if err != nil {
		return store.Category{}, translate(err)
	}
	return c, nil
}
