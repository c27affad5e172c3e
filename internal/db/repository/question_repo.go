package repository

import (
	"context"

	"github.com/gokatarajesh/trivia-api/internal/db/store"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]store.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int32) ([]store.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]store.Question, error)
	CountQuestions(ctx context.Context) (int64, error)
	GetQuestion(ctx context.Context, id int32) (store.Question, error)
	InsertQuestion(ctx context.Context, arg store.InsertQuestionParams) (store.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
}

// QuestionRepository wraps the question queries.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]store.Question, error) {
	return r.store.ListQuestions(ctx)
}

// ListByCategory returns the questions of one category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int32) ([]store.Question, error) {
	return r.store.ListQuestionsByCategory(ctx, categoryID)
}

// Search narrows the scan to questions whose text contains term.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]store.Question, error) {
	return r.store.SearchQuestions(ctx, term)
}

func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	return r.store.CountQuestions(ctx)
}

// Get fetches one question, returning ErrNotFound when the id is unknown.
func (r *QuestionRepository) Get(ctx context.Context, id int32) (store.Question, error) {
	q, err := r.store.GetQuestion(ctx, id)
	if err != nil {
		return store.Question{}, translate(err)
	}
	return q, nil
}

func (r *QuestionRepository) Insert(ctx context.Context, params store.InsertQuestionParams) (store.Question, error) {
	return r.store.InsertQuestion(ctx, params)
}

// Delete removes a question; ErrNotFound means no row was affected.
func (r *QuestionRepository) Delete(ctx context.Context, id int32) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
