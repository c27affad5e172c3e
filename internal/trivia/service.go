package trivia

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/db/store"
)

type questionRepository interface {
	List(ctx context.Context) ([]store.Question, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]store.Question, error)
	Search(ctx context.Context, term string) ([]store.Question, error)
	Count(ctx context.Context) (int64, error)
	Get(ctx context.Context, id int32) (store.Question, error)
	Insert(ctx context.Context, params store.InsertQuestionParams) (store.Question, error)
	Delete(ctx context.Context, id int32) error
}

type categoryRepository interface {
	List(ctx context.Context) ([]store.Category, error)
	Get(ctx context.Context, id int32) (store.Category, error)
}

// ServiceOptions tunes listing and quiz behaviour.
type ServiceOptions struct {
	PageSize int
	Selector *Selector
}

// Service answers question bank queries over a per-call snapshot of the store.
type Service struct {
	questions  questionRepository
	categories categoryRepository
	cache      CategoryCache
	selector   *Selector
	pageSize   int
	logger     zerolog.Logger
}

func NewService(questions questionRepository, categories categoryRepository, cache CategoryCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	selector := opts.Selector
	if selector == nil {
		selector = NewSelector(nil)
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      cache,
		selector:   selector,
		pageSize:   pageSize,
		logger:     logger.With().Str("component", "trivia").Logger(),
	}
}

// Categories returns every category ordered by id.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	if cached, err := s.cache.Categories(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("category cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	rows, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = Category{ID: int(row.ID), Type: row.Type}
	}

	if err := s.cache.SetCategories(ctx, categories); err != nil {
		s.logger.Warn().Err(err).Msg("category cache write failed")
	}
	return categories, nil
}

// Questions returns the whole bank ordered by id.
func (s *Service) Questions(ctx context.Context) ([]Question, error) {
	questions, _, err := s.snapshot(ctx)
	return questions, err
}

func (s *Service) snapshot(ctx context.Context) ([]Question, []Category, error) {
	rows, err := s.questions.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list questions: %w", err)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, nil, err
	}
	return DropOrphans(toDomain(rows), categories), categories, nil
}

// ListQuestions returns one page of the bank. An empty page is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, categories, err := s.snapshot(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	items := Paginate(all, page, s.pageSize)
	if len(items) == 0 {
		return QuestionPage{}, fmt.Errorf("questions page %d: %w", page, ErrNotFound)
	}
	return QuestionPage{
		Questions:      items,
		TotalQuestions: len(all),
		Categories:     categoryLabels(categories),
	}, nil
}

// QuestionsByCategory returns one page of a category. Unknown categories are ErrNotFound;
// a known category without questions yields an empty first page.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (QuestionPage, error) {
	scoped, err := s.scopedPool(ctx, categoryID)
	if err != nil {
		return QuestionPage{}, err
	}
	items := Paginate(scoped, page, s.pageSize)
	if len(items) == 0 && len(scoped) > 0 {
		return QuestionPage{}, fmt.Errorf("category %d page %d: %w", categoryID, page, ErrNotFound)
	}
	return QuestionPage{
		Questions:       items,
		TotalQuestions:  len(scoped),
		CurrentCategory: &categoryID,
	}, nil
}

// SearchQuestions returns questions whose text contains term. Blank terms are
// ErrBadRequest and zero matches are ErrNotFound.
func (s *Service) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	term, ok := NormalizeSearchTerm(term)
	if !ok {
		return nil, missingField("searchTerm")
	}
	rows, err := s.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	matches := Search(DropOrphans(toDomain(rows), categories), term)
	if len(matches) == 0 {
		searchRequests.WithLabelValues("miss").Inc()
		return nil, fmt.Errorf("search %q: %w", term, ErrNotFound)
	}
	searchRequests.WithLabelValues("hit").Inc()
	return matches, nil
}

// CreateQuestion validates req and inserts it.
func (s *Service) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (CreateResult, error) {
	params, err := s.validateCreate(ctx, req)
	if err != nil {
		return CreateResult{}, err
	}

	row, err := s.questions.Insert(ctx, params)
	if err != nil {
		return CreateResult{}, fmt.Errorf("insert question: %w", errors.Join(ErrUnprocessable, err))
	}
	total, err := s.questions.Count(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("count questions: %w", err)
	}

	s.logger.Info().Int32("question_id", row.ID).Int32("category", row.Category).Msg("question created")
	return CreateResult{Question: fromRow(row), TotalQuestions: int(total)}, nil
}

func (s *Service) validateCreate(ctx context.Context, req CreateQuestionRequest) (store.InsertQuestionParams, error) {
	fields := []struct{ name, value string }{
		{"question", req.Question},
		{"answer", req.Answer},
		{"category", req.Category},
		{"difficulty", req.Difficulty},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return store.InsertQuestionParams{}, missingField(f.name)
		}
	}

	categoryID, err := ParseInteger(req.Category)
	if err != nil {
		return store.InsertQuestionParams{}, invalidField("category", "must be an integer")
	}
	difficulty, err := ParseInteger(req.Difficulty)
	if err != nil {
		return store.InsertQuestionParams{}, invalidField("difficulty", "must be an integer")
	}
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return store.InsertQuestionParams{}, invalidField("difficulty",
			fmt.Sprintf("must be between %d and %d", MinDifficulty, MaxDifficulty))
	}

	if _, err := s.category(ctx, categoryID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return store.InsertQuestionParams{}, invalidField("category", fmt.Sprintf("category %d does not exist", categoryID))
		}
		return store.InsertQuestionParams{}, err
	}

	return store.InsertQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   int32(categoryID),
		Difficulty: int32(difficulty),
	}, nil
}

// DeleteQuestion removes a question after confirming it exists. A concurrent delete of the
// same id surfaces as ErrNotFound.
func (s *Service) DeleteQuestion(ctx context.Context, id int) (DeleteResult, error) {
	if id <= 0 || id > math.MaxInt32 {
		return DeleteResult{}, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	if _, err := s.questions.Get(ctx, int32(id)); err != nil {
		return DeleteResult{}, s.wrapLookup(err, "question", id)
	}
	if err := s.questions.Delete(ctx, int32(id)); err != nil {
		return DeleteResult{}, s.wrapLookup(err, "question", id)
	}
	total, err := s.questions.Count(ctx)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("count questions: %w", err)
	}

	s.logger.Info().Int("question_id", id).Msg("question deleted")
	return DeleteResult{Deleted: id, TotalQuestions: int(total)}, nil
}

// NextQuestion draws an unseen question for the session described by req.
// An unknown category behaves as an empty pool.
func (s *Service) NextQuestion(ctx context.Context, req QuizRequest) (Question, error) {
	var (
		pool []Question
		err  error
	)
	if req.CategoryID != nil {
		pool, err = s.scopedPool(ctx, *req.CategoryID)
		if errors.Is(err, ErrNotFound) {
			s.logger.Debug().Int("category", *req.CategoryID).Msg("quiz requested for unknown category")
			pool, err = nil, nil
		}
	} else {
		pool, err = s.Questions(ctx)
	}
	if err != nil {
		return Question{}, err
	}

	q, err := s.selector.Next(pool, req.PreviousQuestions)
	if err != nil {
		if errors.Is(err, ErrExhausted) {
			quizDraws.WithLabelValues("exhausted").Inc()
		}
		return Question{}, err
	}
	quizDraws.WithLabelValues("served").Inc()
	return q, nil
}

func (s *Service) scopedPool(ctx context.Context, categoryID int) ([]Question, error) {
	category, err := s.category(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	rows, err := s.questions.ListByCategory(ctx, int32(categoryID))
	if err != nil {
		return nil, fmt.Errorf("list category %d questions: %w", categoryID, err)
	}
	return FilterByCategory(toDomain(rows), []Category{category}, categoryID)
}

// category looks id up in the store rather than the cached list, so existence checks never
// see a stale cache.
func (s *Service) category(ctx context.Context, id int) (Category, error) {
	if id < 1 || id > math.MaxInt32 {
		return Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	row, err := s.categories.Get(ctx, int32(id))
	if err != nil {
		return Category{}, s.wrapLookup(err, "category", id)
	}
	return Category{ID: int(row.ID), Type: row.Type}, nil
}

func (s *Service) wrapLookup(err error, kind string, id int) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return fmt.Errorf("%s %d: %w", kind, id, err)
}

// ParseInteger accepts decimal integers and integral floats such as "3" or "3.0".
func ParseInteger(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return int(n), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%q is not an integer", raw)
	}
	return int(f), nil
}

func toDomain(rows []store.Question) []Question {
	out := make([]Question, len(rows))
	for i, row := range rows {
		out[i] = fromRow(row)
	}
	return out
}

func fromRow(row store.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}
