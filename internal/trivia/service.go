package trivia

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// QuestionPage is the assembled listing payload shared by the list, search,
// category and delete flows. CurrentCategory is nil except for
// category-scoped listings.
type QuestionPage struct {
	Questions       []Question
	TotalQuestions  int
	Categories      map[int]string
	CurrentCategory *string
}

// CreateQuestionRequest carries a fully validated insert. The HTTP boundary
// resolves the create-vs-search ambiguity before this type is built.
type CreateQuestionRequest struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

// Service implements the question-bank operations over the stores. It holds
// no per-session state; quiz exclusion sets are caller-supplied on each draw.
type Service struct {
	questions  QuestionStore
	categories CategoryStore
	cache      CategoryCache
	selector   *Selector
	logger     zerolog.Logger
}

// ServiceOptions tunes optional collaborators.
type ServiceOptions struct {
	// Cache may be nil; the service then reads categories from the store
	// on every call.
	Cache CategoryCache
	// Selector may be nil; a production (unseeded) selector is used.
	Selector *Selector
}

func NewService(questions QuestionStore, categories CategoryStore, opts ServiceOptions, logger zerolog.Logger) *Service {
	selector := opts.Selector
	if selector == nil {
		selector = NewSelector()
	}
	return &Service{
		questions:  questions,
		categories: categories,
		cache:      opts.Cache,
		selector:   selector,
		logger:     logger.With().Str("component", "trivia_service").Logger(),
	}
}

// ListQuestions returns one page of the full ascending-id question list.
// A page window past the last question is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	all, err := s.questions.ListAll(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}
	current := Paginate(all, page, QuestionsPerPage)
	if len(current) == 0 {
		return QuestionPage{}, fmt.Errorf("page %d: %w", page, ErrNotFound)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{
		Questions:      current,
		TotalQuestions: len(all),
		Categories:     categories,
	}, nil
}

// Categories returns the id -> label map, via the cache when configured.
func (s *Service) Categories(ctx context.Context) (map[int]string, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		}
	}
	categories, err := s.categories.Map(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

// ListByCategory returns every question in one category, unpaginated, with
// the category label. Unknown ids are ErrNotFound.
func (s *Service) ListByCategory(ctx context.Context, categoryID int) (QuestionPage, error) {
	category, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("get category %d: %w", categoryID, err)
	}
	if category == nil {
		return QuestionPage{}, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
	}
	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list category %d: %w", categoryID, err)
	}
	return QuestionPage{
		Questions:       questions,
		TotalQuestions:  len(questions),
		CurrentCategory: &category.Type,
	}, nil
}

// Search returns one page of questions whose text contains term
// case-insensitively. An empty result is success, never ErrNotFound.
func (s *Service) Search(ctx context.Context, term string, page int) (QuestionPage, error) {
	matching, err := s.questions.Search(ctx, term)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("search %q: %w", term, err)
	}
	return QuestionPage{
		Questions:      Paginate(matching, page, QuestionsPerPage),
		TotalQuestions: len(matching),
	}, nil
}

// Create validates and persists one question, returning its assigned id.
// Validation runs before any write: empty text fields, a non-positive
// difficulty, or an unknown category are ErrUnprocessable.
func (s *Service) Create(ctx context.Context, req CreateQuestionRequest) (int, error) {
	if req.Question == "" || req.Answer == "" || req.Difficulty <= 0 {
		return 0, fmt.Errorf("incomplete question: %w", ErrUnprocessable)
	}
	category, err := s.categories.Get(ctx, req.Category)
	if err != nil {
		return 0, fmt.Errorf("get category %d: %w", req.Category, err)
	}
	if category == nil {
		return 0, fmt.Errorf("unknown category %d: %w", req.Category, ErrUnprocessable)
	}
	id, err := s.questions.Insert(ctx, Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	})
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	s.logger.Info().Int("question_id", id).Int("category", req.Category).Msg("question created")
	return id, nil
}

// Delete removes one question by id and returns the refreshed first-page
// listing. An unknown id is ErrNotFound; a store failure during the removal
// is collapsed to ErrUnprocessable rather than leaked raw. The refreshed
// listing tolerates an empty page (the bank may now be empty).
func (s *Service) Delete(ctx context.Context, id int) (QuestionPage, error) {
	existing, err := s.questions.Get(ctx, id)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("get question %d: %w", id, err)
	}
	if existing == nil {
		return QuestionPage{}, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("question_id", id).Msg("delete failed")
		return QuestionPage{}, fmt.Errorf("delete question %d: %w", id, ErrUnprocessable)
	}
	if !deleted {
		// Raced with another delete between the existence check and the
		// removal; the caller asked for a question that no longer exists.
		return QuestionPage{}, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	s.logger.Info().Int("question_id", id).Msg("question deleted")

	remaining, err := s.questions.ListAll(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list after delete: %w", err)
	}
	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	return QuestionPage{
		Questions:      Paginate(remaining, 1, QuestionsPerPage),
		TotalQuestions: len(remaining),
		Categories:     categories,
	}, nil
}

// Draw picks one uncovered question uniformly at random. categoryID zero
// means any category. A nil question with a nil error means the pool is
// exhausted; exhaustion is not an error.
func (s *Service) Draw(ctx context.Context, previousIDs []int, categoryID int) (*Question, error) {
	candidates, err := s.questions.ExcludingIDs(ctx, previousIDs, categoryID)
	if err != nil {
		return nil, fmt.Errorf("draw candidates: %w", err)
	}
	picked, ok := s.selector.Pick(candidates)
	if !ok {
		return nil, nil
	}
	return &picked, nil
}
