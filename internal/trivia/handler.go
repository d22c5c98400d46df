package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/triviaworks/trivia-api/pkg/http/errors"
)

// Handler exposes the question-bank REST endpoints. Routing (method + path
// patterns) is wired in internal/server; every handler here assumes the
// method already matched.
type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

type listResponse struct {
	Success         bool           `json:"success"`
	Questions       []Question     `json:"questions"`
	TotalQuestions  int            `json:"totalQuestions"`
	Categories      map[int]string `json:"categories"`
	CurrentCategory *string        `json:"currentCategory"`
}

type categoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

type categoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"totalQuestions"`
	CurrentCategory *string    `json:"currentCategory"`
}

type searchResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"totalQuestions"`
	CurrentCategory *string    `json:"currentCategory"`
}

type createResponse struct {
	Success    bool   `json:"success"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

type quizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
}

// postQuestionsBody is the raw POST /questions payload. Presence of
// searchTerm selects the search flow and short-circuits create validation;
// the ambiguity is resolved here once, before the core runs.
type postQuestionsBody struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Difficulty *int    `json:"difficulty"`
	Category   *int    `json:"category"`
	SearchTerm *string `json:"searchTerm"`
}

type quizRequestBody struct {
	PreviousQuestions []int `json:"previousQuestions"`
	QuizCategory      *struct {
		ID int `json:"id"`
	} `json:"quizCategory"`
}

// ListQuestions handles GET /questions?page=N.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page, ok := parsePage(r)
	if !ok {
		httperrors.RespondUnprocessable(w)
		return
	}
	result, err := h.svc.ListQuestions(r.Context(), page)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, listResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
		Categories:     result.Categories,
	})
}

// ListCategories handles GET /categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, categoriesResponse{Success: true, Categories: categories})
}

// CategoryDetail handles GET /categories/{id}. Fetching a single category is
// deliberately disallowed; it always answers 422.
func (h *Handler) CategoryDetail(w http.ResponseWriter, r *http.Request) {
	httperrors.RespondUnprocessable(w)
}

// CategoryQuestions handles GET /categories/{id}/questions.
func (h *Handler) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	result, err := h.svc.ListByCategory(r.Context(), categoryID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// PostQuestions handles POST /questions: either a create or a search,
// depending on the payload.
func (h *Handler) PostQuestions(w http.ResponseWriter, r *http.Request) {
	var body postQuestionsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	if body.SearchTerm != nil && *body.SearchTerm != "" {
		page, ok := parsePage(r)
		if !ok {
			httperrors.RespondUnprocessable(w)
			return
		}
		result, err := h.svc.Search(r.Context(), *body.SearchTerm, page)
		if err != nil {
			h.respondError(w, err)
			return
		}
		writeJSON(w, searchResponse{
			Success:        true,
			Questions:      result.Questions,
			TotalQuestions: result.TotalQuestions,
		})
		return
	}

	if body.Question == nil || body.Answer == nil || body.Difficulty == nil || body.Category == nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	req := CreateQuestionRequest{
		Question:   *body.Question,
		Answer:     *body.Answer,
		Difficulty: *body.Difficulty,
		Category:   *body.Category,
	}
	if _, err := h.svc.Create(r.Context(), req); err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, createResponse{
		Success:    true,
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	result, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, listResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
		Categories:     result.Categories,
	})
}

// DrawQuiz handles POST /quizzes. Exhaustion is success with a null
// question, never an error.
func (h *Handler) DrawQuiz(w http.ResponseWriter, r *http.Request) {
	var body quizRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	categoryID := 0
	if body.QuizCategory != nil {
		categoryID = body.QuizCategory.ID
	}
	question, err := h.svc.Draw(r.Context(), body.PreviousQuestions, categoryID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	writeJSON(w, quizResponse{Success: true, Question: question})
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrUnprocessable):
		httperrors.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Msg("request failed")
		httperrors.RespondInternalError(w, "internal server error")
	}
}

// parsePage reads the page query parameter. Absent means page 1; a
// non-numeric or non-positive value is invalid input, not clamped.
func parsePage(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
