package importer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

const (
	SourceOpenTDB   = "opentdb"
	SourceTriviaAPI = "triviaapi"
)

// Candidate is a provider question before it is mapped onto the bank.
type Candidate struct {
	Question   string
	Answer     string
	Category   string
	Difficulty string
}

// Provider fetches candidate questions from an external source.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, amount int) ([]Candidate, error)
}

// NewProvider picks the provider named by cfg.Source.
func NewProvider(cfg config.Import) (Provider, error) {
	client := &http.Client{Timeout: cfg.HTTPTimeout}
	switch strings.ToLower(cfg.Source) {
	case SourceOpenTDB:
		return NewOpenTDBClient(cfg.OpenTDBBaseURL, client), nil
	case SourceTriviaAPI:
		return NewTriviaAPIClient(cfg.TriviaAPIBaseURL, cfg.TriviaAPIKey, client), nil
	default:
		return nil, fmt.Errorf("unknown import source %q (want %s or %s)", cfg.Source, SourceOpenTDB, SourceTriviaAPI)
	}
}

type bank interface {
	Categories(ctx context.Context) ([]trivia.Category, error)
	Questions(ctx context.Context) ([]trivia.Question, error)
	CreateQuestion(ctx context.Context, req trivia.CreateQuestionRequest) (trivia.CreateResult, error)
}

// Report summarises one import run.
type Report struct {
	Fetched  int `json:"fetched"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Importer copies provider questions into the bank through the same validation as the API.
type Importer struct {
	bank   bank
	logger zerolog.Logger
}

func New(b bank, logger zerolog.Logger) *Importer {
	return &Importer{
		bank:   b,
		logger: logger.With().Str("component", "importer").Logger(),
	}
}

// Run fetches amount questions from p and inserts those whose category and difficulty
// resolve and whose text is not already in the bank.
func (im *Importer) Run(ctx context.Context, p Provider, amount int) (Report, error) {
	var report Report
	if amount <= 0 {
		return report, fmt.Errorf("amount must be positive, got %d", amount)
	}

	candidates, err := p.Fetch(ctx, amount)
	if err != nil {
		return report, fmt.Errorf("fetch from %s: %w", p.Name(), err)
	}
	report.Fetched = len(candidates)

	categories, err := im.bank.Categories(ctx)
	if err != nil {
		return report, err
	}
	existing, err := im.bank.Questions(ctx)
	if err != nil {
		return report, err
	}
	seen := make(map[string]struct{}, len(existing)+len(candidates))
	for _, q := range existing {
		seen[textKey(q.Question)] = struct{}{}
	}

	for _, c := range candidates {
		log := im.logger.With().Str("source", p.Name()).Str("question", c.Question).Logger()

		categoryID, ok := MapCategory(c.Category, categories)
		if !ok {
			log.Debug().Str("category", c.Category).Msg("skipping question with unmapped category")
			report.Skipped++
			continue
		}
		difficulty, ok := MapDifficulty(c.Difficulty)
		if !ok {
			log.Debug().Str("difficulty", c.Difficulty).Msg("skipping question with unknown difficulty")
			report.Skipped++
			continue
		}
		key := textKey(c.Question)
		if _, dup := seen[key]; dup {
			report.Skipped++
			continue
		}

		_, err := im.bank.CreateQuestion(ctx, trivia.CreateQuestionRequest{
			Question:   strings.TrimSpace(c.Question),
			Answer:     strings.TrimSpace(c.Answer),
			Category:   strconv.Itoa(categoryID),
			Difficulty: strconv.Itoa(difficulty),
		})
		if errors.Is(err, trivia.ErrBadRequest) || errors.Is(err, trivia.ErrUnprocessable) {
			log.Warn().Err(err).Msg("bank rejected question")
			report.Skipped++
			continue
		}
		if err != nil {
			return report, fmt.Errorf("create question: %w", err)
		}
		seen[key] = struct{}{}
		report.Imported++
	}

	im.logger.Info().
		Str("source", p.Name()).
		Int("fetched", report.Fetched).
		Int("imported", report.Imported).
		Int("skipped", report.Skipped).
		Msg("import finished")
	return report, nil
}

// provider labels that do not share a name with a bank category
var categoryAliases = map[string]string{
	"arts":                "art",
	"arts and literature": "art",
	"celebrities":         "entertainment",
	"film":                "entertainment",
	"film and tv":         "entertainment",
	"music":               "entertainment",
	"television":          "entertainment",
	"video games":         "entertainment",
	"science and nature":  "science",
	"sport and leisure":   "sports",
	"sport":               "sports",
}

// MapCategory resolves a provider label such as "Entertainment: Film", "Science & Nature" or
// "film_and_tv" to a bank category id. Matching is case-insensitive.
func MapCategory(label string, categories []trivia.Category) (int, bool) {
	name := strings.ToLower(label)
	if i := strings.Index(name, ":"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "&", "and")
	name = strings.Join(strings.Fields(name), " ")
	if alias, ok := categoryAliases[name]; ok {
		name = alias
	}

	for _, c := range categories {
		if strings.EqualFold(c.Type, name) {
			return c.ID, true
		}
	}
	return 0, false
}

// MapDifficulty spreads the provider's three levels across the bank's 1..5 scale.
func MapDifficulty(level string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "easy":
		return 1, true
	case "medium":
		return 3, true
	case "hard":
		return 5, true
	}
	return 0, false
}

func textKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
