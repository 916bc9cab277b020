package seeder

import (
	"context"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

func Defaults() []Seeder {
	return []Seeder{
		RatingsSeeder{},
		CompetenciesSeeder{},
	}
}
