package trivia

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(store *memStore, opts ServiceOptions) *http.ServeMux {
	svc := NewService(store, categoryStoreAdapter{store}, opts, zerolog.New(io.Discard))
	h := NewHandler(svc, zerolog.New(io.Discard))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.PostQuestions)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("GET /categories/{id}", h.CategoryDetail)
	mux.HandleFunc("GET /categories/{id}/questions", h.CategoryQuestions)
	mux.HandleFunc("POST /quizzes", h.DrawQuiz)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestGetQuestionsEnvelope(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodGet, "/questions", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(19), data["totalQuestions"])
	assert.Len(t, data["questions"], 10)
	assert.NotEmpty(t, data["categories"])
	assert.Nil(t, data["currentCategory"])
}

func TestGetQuestionsBeyondLastPage(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodGet, "/questions?page=1000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, data["success"])
	assert.Equal(t, "Resource not found", data["message"])
}

func TestGetQuestionsInvalidPage(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	for _, target := range []string{"/questions?page=0", "/questions?page=-3", "/questions?page=abc"} {
		rec, data := doJSON(t, mux, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, target)
		assert.Equal(t, "Unprocessable Entity", data["message"])
	}
}

func TestGetCategories(t *testing.T) {
	store := newMemStore(testCategories())
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	categories, ok := data["categories"].(map[string]any)
	assert.True(t, ok, "categories must be a map, not an array")
	assert.Equal(t, "Science", categories["1"])
}

func TestGetCategoryDetailDisallowed(t *testing.T) {
	store := newMemStore(testCategories())
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodGet, "/categories/5", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, data["success"])
	assert.Equal(t, "Unprocessable Entity", data["message"])
}

func TestGetCategoryQuestions(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodGet, "/categories/1/questions", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, "Science", data["currentCategory"])
	assert.NotEmpty(t, data["questions"])
}

func TestGetCategoryQuestionsUnknown(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodGet, "/categories/100000/questions", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", data["message"])
}

func TestPostQuestionsSearch(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodPost, "/questions", map[string]any{"searchTerm": "number 4"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(1), data["totalQuestions"])
	assert.Nil(t, data["currentCategory"])
}

func TestPostQuestionsSearchNoMatches(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodPost, "/questions", map[string]any{"searchTerm": "zzzzzz"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(0), data["totalQuestions"])
}

func TestPostQuestionsCreate(t *testing.T) {
	store := newMemStore(testCategories())
	mux := newTestRouter(store, ServiceOptions{})

	payload := map[string]any{
		"question":   "What boxer's original name is Cassius Clay?",
		"answer":     "Muhammad Ali",
		"difficulty": 1,
		"category":   4,
	}
	store.categories[4] = "History"

	rec, data := doJSON(t, mux, http.MethodPost, "/questions", payload)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, payload["question"], data["question"])
	assert.Equal(t, payload["answer"], data["answer"])
	assert.Equal(t, float64(1), data["difficulty"])
	assert.Equal(t, float64(4), data["category"])
	assert.Len(t, store.questions, 1)
}

func TestPostQuestionsIncompletePayload(t *testing.T) {
	store := newMemStore(testCategories())
	mux := newTestRouter(store, ServiceOptions{})

	payloads := []map[string]any{
		{},
		{"question": "q", "answer": "a", "difficulty": 1},
		{"question": "q", "answer": "a", "category": 1},
		{"searchTerm": ""},
	}
	for _, payload := range payloads {
		rec, data := doJSON(t, mux, http.MethodPost, "/questions", payload)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "Unprocessable Entity", data["message"])
	}
	assert.Empty(t, store.questions)
}

func TestDeleteQuestion(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodDelete, "/questions/16", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(18), data["totalQuestions"])
	assert.NotEmpty(t, data["categories"])
	assert.Nil(t, data["currentCategory"])
	assert.Len(t, store.questions, 18)
}

func TestDeleteQuestionUnknown(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	rec, data := doJSON(t, mux, http.MethodDelete, "/questions/100000", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", data["message"])
	assert.Len(t, store.questions, 19)
}

func TestDrawQuizWithCategory(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{Selector: NewSeededSelector(1)})

	payload := map[string]any{
		"previousQuestions": []int{},
		"quizCategory":      map[string]any{"id": 1},
	}
	rec, data := doJSON(t, mux, http.MethodPost, "/quizzes", payload)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	question, ok := data["question"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, float64(1), question["category"])
}

func TestDrawQuizExhausted(t *testing.T) {
	store := newMemStore(testCategories())
	seedNineteen(store)
	mux := newTestRouter(store, ServiceOptions{})

	asked := make([]int, 0, 19)
	for i := 1; i <= 19; i++ {
		asked = append(asked, i)
	}
	payload := map[string]any{
		"previousQuestions": asked,
		"quizCategory":      map[string]any{"id": 0},
	}
	rec, data := doJSON(t, mux, http.MethodPost, "/quizzes", payload)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Nil(t, data["question"], "exhaustion is success with a null question")
}
