package seeder

import (
	"context"
	"fmt"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

// RatingsSeeder installs the default five-level rating scale.
type RatingsSeeder struct{}

func (RatingsSeeder) Name() string { return "ratings" }

func (RatingsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Value int
		Label string
	}{
		{Value: 1, Label: "Notions"},
		{Value: 2, Label: "Débutant"},
		{Value: 3, Label: "Confirmé"},
		{Value: 4, Label: "Avancé"},
		{Value: 5, Label: "Expert"},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO ratings (value, label) VALUES ($1, $2) ON CONFLICT (value) DO NOTHING`,
			it.Value,
			it.Label,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
