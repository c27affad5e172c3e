package trivia

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandler exposes the question bank over REST.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs the question bank HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Routes mounts the question bank endpoints on r.
func (h *HTTPHandler) Routes(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Get("/categories/{id}/questions", h.QuestionsByCategory)
	r.Get("/questions", h.ListQuestions)
	r.Post("/questions", h.CreateOrSearchQuestions)
	r.Delete("/questions/{id}", h.DeleteQuestion)
	r.Post("/quizzes", h.NextQuizQuestion)
}

// ListCategories handles GET /categories
func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"categories":       categories,
		"total_categories": len(categories),
	})
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := ParsePage(r.URL.Query().Get("page"))
	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.TotalQuestions,
		"categories":       result.Categories,
		"current_category": nil,
	})
}

// QuestionsByCategory handles GET /categories/{id}/questions?page=N
func (h *HTTPHandler) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	page := ParsePage(r.URL.Query().Get("page"))
	result, err := h.svc.QuestionsByCategory(r.Context(), id, page)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        result.Questions,
		"total_questions":  result.TotalQuestions,
		"current_category": id,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	result, err := h.svc.DeleteQuestion(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deleted":         result.Deleted,
		"total_questions": result.TotalQuestions,
	})
}

type questionsPayload struct {
	SearchTerm *string         `json:"searchTerm"`
	Question   *string         `json:"question"`
	Answer     *string         `json:"answer"`
	Category   json.RawMessage `json:"category"`
	Difficulty json.RawMessage `json:"difficulty"`
}

// CreateOrSearchQuestions handles POST /questions. A non-blank searchTerm makes the call a
// search; anything else is a creation attempt.
func (h *HTTPHandler) CreateOrSearchQuestions(w http.ResponseWriter, r *http.Request) {
	var payload questionsPayload
	if err := decodeBody(w, r, &payload); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidPayload)
		return
	}

	if payload.SearchTerm != nil {
		if term, ok := NormalizeSearchTerm(*payload.SearchTerm); ok {
			h.searchQuestions(w, r, term)
			return
		}
	}

	req := CreateQuestionRequest{
		Question:   deref(payload.Question),
		Answer:     deref(payload.Answer),
		Category:   scalarText(payload.Category),
		Difficulty: scalarText(payload.Difficulty),
	}
	result, err := h.svc.CreateQuestion(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success":         true,
		"created":         result.Question.ID,
		"question":        result.Question,
		"total_questions": result.TotalQuestions,
	})
}

func (h *HTTPHandler) searchQuestions(w http.ResponseWriter, r *http.Request, term string) {
	matches, err := h.svc.SearchQuestions(r.Context(), term)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        matches,
		"total_questions":  len(matches),
		"current_category": matches[0].Category,
	})
}

type quizPayload struct {
	QuizCategory *struct {
		ID   json.RawMessage `json:"id"`
		Type string          `json:"type"`
	} `json:"quiz_category"`
	PreviousQuestions []int `json:"previous_questions"`
}

// NextQuizQuestion handles POST /quizzes. An exhausted pool is a normal 200 response with a
// null question.
func (h *HTTPHandler) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var payload quizPayload
	if err := decodeBody(w, r, &payload); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidPayload)
		return
	}

	req := QuizRequest{PreviousQuestions: payload.PreviousQuestions}
	if payload.QuizCategory != nil {
		if raw := scalarText(payload.QuizCategory.ID); raw != "" {
			id, err := ParseInteger(raw)
			if err != nil {
				httperrors.RespondUnprocessable(w, "quiz_category.id")
				return
			}
			// id 0 is the "All" choice
			if id != 0 {
				req.CategoryID = &id
			}
		}
	}

	q, err := h.svc.NextQuestion(r.Context(), req)
	if errors.Is(err, ErrExhausted) {
		h.respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":   true,
			"question":  nil,
			"exhausted": true,
			"message":   "no more questions",
		})
		return
	}
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": q,
	})
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var field string
	var verr *ValidationError
	if errors.As(err, &verr) {
		field = verr.Field
	}

	switch {
	case errors.Is(err, ErrBadRequest):
		httperrors.RespondFieldError(w, http.StatusBadRequest, httperrors.ErrCodeMissingField, httperrors.MsgBadRequest, field)
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrUnprocessable):
		logging.FromContextOr(r.Context(), &h.logger).Warn().Err(err).Msg("request rejected")
		httperrors.RespondUnprocessable(w, field)
	default:
		logging.FromContextOr(r.Context(), &h.logger).Error().Err(err).Str("path", r.URL.Path).Msg("question bank request failed")
		httperrors.RespondInternalError(w)
	}
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn().Err(err).Msg("failed to encode response")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(dst)
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}

// scalarText renders a JSON string or number as text. null and absent values are empty;
// other JSON kinds come back verbatim so they fail integer parsing.
func scalarText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	}
	return string(raw)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
