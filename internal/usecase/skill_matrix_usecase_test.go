package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

func skillMatrixFixture() (*SkillMatrix, *mockMatrixRepo) {
	matrix := newMockMatrixRepo()
	people := newMockPersonRepo(repository.Person{ID: "P001", LastName: "Durand"})
	competencies := newMockCompetencyRepo(repository.Competency{Label: "JAVA"})
	ratings := newMockRatingRepo(repository.Rating{Value: 3, Label: "Confirme"})
	return NewSkillMatrixUsecase(matrix, people, competencies, ratings, nil), matrix
}

func TestSkillMatrixCreate(t *testing.T) {
	uc, _ := skillMatrixFixture()

	created, err := uc.Create(context.Background(), SkillEntryInput{
		PersonID:        "P001",
		CompetencyLabel: "JAVA",
		RatingValue:     3,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.PersonID != "P001" || created.CompetencyLabel != "JAVA" || created.RatingValue != 3 {
		t.Fatalf("unexpected entry: %+v", created)
	}

	if _, err := uc.Create(context.Background(), SkillEntryInput{PersonID: "P001", CompetencyLabel: "JAVA", RatingValue: 3}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for second rating of the same pair, got %v", err)
	}
}

func TestSkillMatrixCreateUnknownReferences(t *testing.T) {
	uc, _ := skillMatrixFixture()

	cases := []struct {
		name string
		in   SkillEntryInput
	}{
		{"unknown person", SkillEntryInput{PersonID: "P404", CompetencyLabel: "JAVA", RatingValue: 3}},
		{"unknown competency", SkillEntryInput{PersonID: "P001", CompetencyLabel: "COBOL", RatingValue: 3}},
		{"unknown rating", SkillEntryInput{PersonID: "P001", CompetencyLabel: "JAVA", RatingValue: 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), tc.in); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestSkillMatrixUpdateAndDelete(t *testing.T) {
	uc, matrix := skillMatrixFixture()
	matrix.items[matrixKey{"P001", "JAVA"}] = repository.SkillEntry{
		PersonID: "P001", CompetencyLabel: "JAVA", RatingValue: 1,
	}

	updated, err := uc.Update(context.Background(), SkillEntryInput{PersonID: "P001", CompetencyLabel: "JAVA", RatingValue: 3})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.RatingValue != 3 {
		t.Fatalf("expected rating 3, got %d", updated.RatingValue)
	}

	if err := uc.Delete(context.Background(), "P001", "JAVA"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.Delete(context.Background(), "P001", "JAVA"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSkillMatrixWriteFlushesAvailabilityCache(t *testing.T) {
	matrix := newMockMatrixRepo()
	people := newMockPersonRepo(repository.Person{ID: "P001", LastName: "Durand"})
	competencies := newMockCompetencyRepo(repository.Competency{Label: "JAVA"})
	ratings := newMockRatingRepo(repository.Rating{Value: 3, Label: "Confirme"})
	cache := newMemCache()
	uc := NewSkillMatrixUsecase(matrix, people, competencies, ratings, cache)

	if _, err := uc.Create(context.Background(), SkillEntryInput{PersonID: "P001", CompetencyLabel: "JAVA", RatingValue: 3}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.deletes == 0 {
		t.Fatalf("matrix write must flush the availability cache")
	}
}

func TestSkillMatrixListByPersonUnknown(t *testing.T) {
	uc, _ := skillMatrixFixture()
	if _, err := uc.ListByPerson(context.Background(), "P404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
