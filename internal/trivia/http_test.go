package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/store"
)

func newTestRouter(t *testing.T, rows ...store.Question) (http.Handler, *stubQuestionRepo) {
	t.Helper()
	repo := newStubQuestionRepo(rows...)
	svc := newTestService(repo, classicCategories(), ServiceOptions{PageSize: 10})
	r := chi.NewRouter()
	NewHTTPHandler(svc, zerolog.Nop()).Routes(r)
	return r, repo
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	return rec, decoded
}

func TestHTTPListCategories(t *testing.T) {
	h, _ := newTestRouter(t)

	rec, body := do(t, h, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(6), body["total_categories"])

	categories := body["categories"].([]interface{})
	first := categories[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Science", first["type"])
}

func TestHTTPListQuestions(t *testing.T) {
	h, _ := newTestRouter(t, bankOf(23)...)

	rec, body := do(t, h, http.MethodGet, "/questions?page=3", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["questions"], 3)
	assert.Equal(t, float64(23), body["total_questions"])
	assert.Len(t, body["categories"], 6)
	assert.Contains(t, body, "current_category")
	assert.Nil(t, body["current_category"])

	rec, body = do(t, h, http.MethodGet, "/questions?page=abc", "")
	assert.Equal(t, http.StatusOK, rec.Code, "unparseable page falls back to page 1")
	assert.Len(t, body["questions"], 10)

	rec, body = do(t, h, http.MethodGet, "/questions?page=1000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "not_found", body["error"])
	assert.Equal(t, "Resource not found", body["message"])
}

func TestHTTPQuestionsByCategory(t *testing.T) {
	h, _ := newTestRouter(t, bankOf(23)...)

	rec, body := do(t, h, http.MethodGet, "/categories/2/questions", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["current_category"])
	assert.Equal(t, float64(5), body["total_questions"])

	rec, _ = do(t, h, http.MethodGet, "/categories/999/questions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/categories/science/questions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPSearch(t *testing.T) {
	rows := []store.Question{
		{ID: 5, Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", Category: 4, Difficulty: 2},
		{ID: 9, Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: 4, Difficulty: 1},
	}
	h, _ := newTestRouter(t, rows...)

	rec, body := do(t, h, http.MethodPost, "/questions", `{"searchTerm":"title"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total_questions"])
	assert.Equal(t, float64(4), body["current_category"])

	rec, _ = do(t, h, http.MethodPost, "/questions", `{"searchTerm":"flippity"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPCreateQuestion(t *testing.T) {
	h, repo := newTestRouter(t, bankOf(3)...)

	rec, body := do(t, h, http.MethodPost, "/questions",
		`{"question":"What is python","answer":"A versatile Programming Language","category":1,"difficulty":"5"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, float64(4), body["created"])
	assert.Equal(t, float64(4), body["total_questions"])

	n, _ := repo.Count(context.Background())
	assert.Equal(t, int64(4), n)
}

func TestHTTPCreateQuestionErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		field  string
	}{
		{"missing difficulty", `{"question":"Q","answer":"A","category":1}`, http.StatusBadRequest, "difficulty"},
		{"blank search term is a create", `{"searchTerm":"  "}`, http.StatusBadRequest, "question"},
		{"non-numeric difficulty", `{"question":"Q","answer":"A","category":1,"difficulty":"hard"}`, http.StatusUnprocessableEntity, "difficulty"},
		{"difficulty as bool", `{"question":"Q","answer":"A","category":1,"difficulty":true}`, http.StatusUnprocessableEntity, "difficulty"},
		{"unknown category", `{"question":"Q","answer":"A","category":77,"difficulty":2}`, http.StatusUnprocessableEntity, "category"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, _ := newTestRouter(t)
			rec, body := do(t, h, http.MethodPost, "/questions", tc.body)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.field, body["field"])
		})
	}
}

func TestHTTPMalformedBody(t *testing.T) {
	h, _ := newTestRouter(t)

	rec, body := do(t, h, http.MethodPost, "/questions", `{"question":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_payload", body["error"])

	rec, _ = do(t, h, http.MethodPost, "/quizzes", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHTTPDeleteQuestion(t *testing.T) {
	h, _ := newTestRouter(t, bankOf(5)...)

	rec, body := do(t, h, http.MethodDelete, "/questions/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["deleted"])
	assert.Equal(t, float64(4), body["total_questions"])

	rec, _ = do(t, h, http.MethodDelete, "/questions/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/questions/13000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPQuiz(t *testing.T) {
	rows := []store.Question{
		{ID: 1, Question: "Q1?", Answer: "A", Category: 1, Difficulty: 1},
		{ID: 2, Question: "Q2?", Answer: "A", Category: 1, Difficulty: 1},
		{ID: 3, Question: "Q3?", Answer: "A", Category: 2, Difficulty: 1},
	}
	h, _ := newTestRouter(t, rows...)

	rec, body := do(t, h, http.MethodPost, "/quizzes",
		`{"previous_questions":[1],"quiz_category":{"type":"Science","id":"1"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	q := body["question"].(map[string]interface{})
	assert.Equal(t, float64(2), q["id"])

	rec, body = do(t, h, http.MethodPost, "/quizzes",
		`{"previous_questions":[1,2],"quiz_category":{"type":"Science","id":1}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "question")
	assert.Nil(t, body["question"])
	assert.Equal(t, true, body["exhausted"])

	rec, body = do(t, h, http.MethodPost, "/quizzes",
		`{"previous_questions":[1,2],"quiz_category":{"type":"click","id":0}}`)
	assert.Equal(t, http.StatusOK, rec.Code, "id 0 draws from every category")
	q = body["question"].(map[string]interface{})
	assert.Equal(t, float64(3), q["id"])

	rec, body = do(t, h, http.MethodPost, "/quizzes", `{"quiz_category":{"id":"science"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "quiz_category.id", body["field"])
}

func TestHTTPStoreFailureIsJSON500(t *testing.T) {
	h, repo := newTestRouter(t, bankOf(3)...)
	repo.listErr = errors.New("connection refused")

	rec, body := do(t, h, http.MethodGet, "/questions", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal_error", body["error"])
}
