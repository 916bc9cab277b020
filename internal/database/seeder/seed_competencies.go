package seeder

import (
	"context"
	"fmt"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

// CompetenciesSeeder installs a baseline competency catalogue so a fresh
// instance is immediately usable for skill-matrix entry.
type CompetenciesSeeder struct{}

func (CompetenciesSeeder) Name() string { return "competencies" }

func (CompetenciesSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Label       string
		Description string
	}{
		{Label: "JAVA", Description: "Développement Java"},
		{Label: "GO", Description: "Développement Go"},
		{Label: "SPRING", Description: "Framework Spring"},
		{Label: "SQL", Description: "Bases de données relationnelles"},
		{Label: "DEVOPS", Description: "Intégration et déploiement continus"},
		{Label: "ARCHITECTURE", Description: "Architecture logicielle"},
	}

	for _, it := range items {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO competencies (label, description) VALUES ($1, $2) ON CONFLICT (label) DO NOTHING`,
			it.Label,
			it.Description,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
