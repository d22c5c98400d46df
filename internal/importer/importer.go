// Package importer seeds the question bank from the Open Trivia DB,
// mapping remote category labels and textual difficulties onto the local
// schema. Inserts go through the same validated service path as the API.
package importer

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/rs/zerolog"

	"github.com/triviaworks/trivia-api/internal/trivia"
)

type questionSource interface {
	Fetch(ctx context.Context, amount int, difficulty string) ([]OpenTDBQuestion, error)
}

// Importer pulls question batches from a source and inserts the ones that
// map onto a known category.
type Importer struct {
	source     questionSource
	svc        *trivia.Service
	categories trivia.CategoryStore
	logger     zerolog.Logger
}

func New(source questionSource, svc *trivia.Service, categories trivia.CategoryStore, logger zerolog.Logger) *Importer {
	return &Importer{
		source:     source,
		svc:        svc,
		categories: categories,
		logger:     logger.With().Str("component", "importer").Logger(),
	}
}

// Run fetches one batch per difficulty level and inserts every mappable
// question. It returns the number of questions inserted.
func (i *Importer) Run(ctx context.Context, perDifficulty int) (int, error) {
	categories, err := i.categories.Map(ctx)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, difficulty := range []string{"easy", "medium", "hard"} {
		batch, err := i.source.Fetch(ctx, perDifficulty, difficulty)
		if err != nil {
			return inserted, err
		}
		for _, remote := range batch {
			categoryID, ok := mapCategory(categories, remote.Category)
			if !ok {
				i.logger.Debug().Str("category", remote.Category).Msg("no matching local category, skipped")
				continue
			}
			req := trivia.CreateQuestionRequest{
				Question:   html.UnescapeString(remote.Question),
				Answer:     html.UnescapeString(remote.CorrectAnswer),
				Difficulty: mapDifficulty(remote.Difficulty),
				Category:   categoryID,
			}
			if _, err := i.svc.Create(ctx, req); err != nil {
				if errors.Is(err, trivia.ErrUnprocessable) {
					i.logger.Warn().Str("question", req.Question).Msg("rejected by validation, skipped")
					continue
				}
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}

// mapCategory matches a remote label like "Entertainment: Film" or
// "Science & Nature" onto a seeded category by case-insensitive containment.
func mapCategory(categories map[int]string, remote string) (int, bool) {
	lowered := strings.ToLower(remote)
	for id, label := range categories {
		if strings.Contains(lowered, strings.ToLower(label)) {
			return id, true
		}
	}
	return 0, false
}

// mapDifficulty converts OpenTDB's textual scale onto the 1..5 integer scale.
func mapDifficulty(difficulty string) int {
	switch strings.ToLower(difficulty) {
	case "easy":
		return 1
	case "medium":
		return 3
	case "hard":
		return 5
	default:
		return 1
	}
}
