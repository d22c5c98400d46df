package trivia

import "context"

// QuestionsPerPage is the fixed page window for all paginated listings.
const QuestionsPerPage = 10

// Question is a single trivia question as stored and as served to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

// Category is a labeled grouping of questions. Categories are seed data:
// created out-of-band, never mutated or deleted by this service.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// QuestionStore is the persistence contract for questions. All listing
// methods return questions in ascending id order.
type QuestionStore interface {
	ListAll(ctx context.Context) ([]Question, error)
	ListByCategory(ctx context.Context, categoryID int) ([]Question, error)
	Search(ctx context.Context, term string) ([]Question, error)
	// ExcludingIDs returns questions whose id is not in ids, restricted to
	// one category when categoryID is non-zero.
	ExcludingIDs(ctx context.Context, ids []int, categoryID int) ([]Question, error)
	Get(ctx context.Context, id int) (*Question, error)
	Insert(ctx context.Context, q Question) (int, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// CategoryStore is the persistence contract for categories.
type CategoryStore interface {
	// Map returns all categories keyed by id.
	Map(ctx context.Context) (map[int]string, error)
	Get(ctx context.Context, id int) (*Category, error)
}

// CategoryCache caches the category map (implemented by the Redis-backed
// Cache). Get returns (nil, nil) on a miss.
type CategoryCache interface {
	Get(ctx context.Context) (map[int]string, error)
	Set(ctx context.Context, categories map[int]string) error
}
