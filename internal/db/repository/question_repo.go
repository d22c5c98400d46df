package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/triviaworks/trivia-api/internal/trivia"
)

// QuestionRepository implements trivia.QuestionStore over Postgres.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

var _ trivia.QuestionStore = (*QuestionRepository)(nil)

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionColumns = "id, question, answer, difficulty, category"

// ListAll returns every question in ascending id order.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM questions ORDER BY id
	`, questionColumns))
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	return scanQuestions(rows)
}

// ListByCategory returns every question in one category, ascending by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM questions WHERE category = $1 ORDER BY id
	`, questionColumns), categoryID)
	if err != nil {
		return nil, fmt.Errorf("query category questions: %w", err)
	}
	return scanQuestions(rows)
}

// Search returns questions whose text contains term case-insensitively,
// ascending by id.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM questions WHERE question ILIKE '%%' || $1 || '%%' ORDER BY id
	`, questionColumns), term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

// ExcludingIDs returns questions whose id is not in ids, restricted to one
// category when categoryID is non-zero.
func (r *QuestionRepository) ExcludingIDs(ctx context.Context, ids []int, categoryID int) ([]trivia.Question, error) {
	if ids == nil {
		ids = []int{}
	}
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM questions
		WHERE id <> ALL($1) AND ($2 = 0 OR category = $2)
		ORDER BY id
	`, questionColumns), ids, categoryID)
	if err != nil {
		return nil, fmt.Errorf("query candidate questions: %w", err)
	}
	return scanQuestions(rows)
}

// Get returns one question by id, or nil when absent.
func (r *QuestionRepository) Get(ctx context.Context, id int) (*trivia.Question, error) {
	var q trivia.Question
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM questions WHERE id = $1
	`, questionColumns), id).Scan(&q.ID, &q.Question, &q.Answer, &q.Difficulty, &q.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &q, nil
}

// Insert persists one question and returns its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, q trivia.Question) (int, error) {
	var id int
	err := r.pool.QueryRow(ctx, `
		INSERT INTO questions (question, answer, difficulty, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, q.Question, q.Answer, q.Difficulty, q.Category).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

// Delete removes one question by id; false means no row existed.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete question: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()

	questions := []trivia.Question{}
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Difficulty, &q.Category); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return questions, nil
}
