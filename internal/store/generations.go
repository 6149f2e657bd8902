package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// GenerationRecord is one row in prompt_generations. It carries derived
// metadata only; transcript text is never stored.
type GenerationRecord struct {
	ID             uuid.UUID
	Template       string
	ModelTarget    string
	Verbosity      string
	Language       string
	PrimaryIntent  string
	OutputType     string
	AmbiguityScore float64
	WordCount      int
	UsedAI         bool
	DurationMS     int64
}

func (s *Store) RecordGeneration(ctx context.Context, rec GenerationRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO prompt_generations
			(id, template, model_target, verbosity, language, primary_intent,
			 output_type, ambiguity, word_count, used_ai, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())`,
		rec.ID, rec.Template, rec.ModelTarget, rec.Verbosity, rec.Language,
		rec.PrimaryIntent, rec.OutputType, rec.AmbiguityScore, rec.WordCount,
		rec.UsedAI, rec.DurationMS,
	)
	if err != nil {
		return fmt.Errorf("insert generation: %w", err)
	}
	return nil
}

// CountGenerations reports the total number of recorded generations.
func (s *Store) CountGenerations(ctx context.Context) (int64, error) {
	var n int64
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM prompt_generations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count generations: %w", err)
	}
	return n, nil
}
