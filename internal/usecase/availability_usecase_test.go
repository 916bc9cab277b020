package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// P001 is on the market, P002's window ended yesterday.
func availabilityFixture(cache QueryCache) (*Availability, *mockProfileRepo, *mockMatrixRepo) {
	profiles := newMockProfileRepo(
		repository.AvailabilityProfile{PersonID: "P001", Manager: "M1", WindowStart: datePtr(2025, time.June, 1)},
		repository.AvailabilityProfile{PersonID: "P002", Manager: "M1", WindowEnd: datePtr(2025, time.June, 14)},
	)
	people := newMockPersonRepo(
		repository.Person{ID: "P001", LastName: "Durand"},
		repository.Person{ID: "P002", LastName: "Martin"},
	)
	matrix := newMockMatrixRepo(
		repository.SkillEntry{PersonID: "P001", CompetencyLabel: "JAVA", RatingValue: 4},
		repository.SkillEntry{PersonID: "P001", CompetencyLabel: "SPRING", RatingValue: 4},
		repository.SkillEntry{PersonID: "P002", CompetencyLabel: "JAVA", RatingValue: 5},
	)

	uc := NewAvailabilityUsecase(profiles, people, matrix, cache)
	uc.now = func() time.Time { return fixedNow }
	return uc, profiles, matrix
}

func TestAvailablePeople(t *testing.T) {
	uc, _, _ := availabilityFixture(nil)

	out, err := uc.AvailablePeople(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 available person, got %d", len(out))
	}
	if out[0].Person.ID != "P001" {
		t.Fatalf("expected P001, got %s", out[0].Person.ID)
	}
}

func TestAvailablePeopleCached(t *testing.T) {
	cache := newMemCache()
	uc, profiles, _ := availabilityFixture(cache)

	if _, err := uc.AvailablePeople(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.AvailablePeople(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if profiles.getAllHits != 1 {
		t.Fatalf("second read must come from the cache, repo hit %d times", profiles.getAllHits)
	}
}

func TestCreateProfileInvalidatesCache(t *testing.T) {
	cache := newMemCache()
	uc, _, _ := availabilityFixture(cache)

	if _, err := uc.AvailablePeople(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.CreateProfile(context.Background(), repository.AvailabilityProfile{PersonID: "P001"}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for second profile, got %v", err)
	}

	// A successful mutation wipes the profils:* keys.
	if err := uc.DeleteProfile(context.Background(), "P002"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.deletes == 0 {
		t.Fatalf("expected a cache invalidation after delete")
	}
	if len(cache.data) != 0 {
		t.Fatalf("expected empty cache, got %d keys", len(cache.data))
	}
}

func TestCreateProfileUnknownPerson(t *testing.T) {
	uc, _, _ := availabilityFixture(nil)
	_, err := uc.CreateProfile(context.Background(), repository.AvailabilityProfile{PersonID: "P404"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatrixForAvailablePerson(t *testing.T) {
	uc, _, _ := availabilityFixture(nil)

	entries, err := uc.MatrixForAvailablePerson(context.Background(), "P001")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	if _, err := uc.MatrixForAvailablePerson(context.Background(), "P002"); !errors.Is(err, ErrPersonUnavailable) {
		t.Fatalf("expected ErrPersonUnavailable for expired window, got %v", err)
	}
	if _, err := uc.MatrixForAvailablePerson(context.Background(), "P404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing profile, got %v", err)
	}
}

func TestFilterByMinimumRating(t *testing.T) {
	uc, _, _ := availabilityFixture(nil)

	out, err := uc.FilterByMinimumRating(context.Background(), []string{"JAVA", "SPRING"}, 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].Person.ID != "P001" {
		t.Fatalf("expected only P001, got %+v", out)
	}

	// P002 holds JAVA 5 but is off the market, and P001 misses the bar at 5.
	out, err = uc.FilterByMinimumRating(context.Background(), []string{"JAVA"}, 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no match, got %+v", out)
	}

	if _, err := uc.FilterByMinimumRating(context.Background(), nil, 3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty labels, got %v", err)
	}
	if _, err := uc.FilterByMinimumRating(context.Background(), []string{"JAVA"}, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-positive rating, got %v", err)
	}
}

func TestFilterByCompetencies(t *testing.T) {
	uc, _, _ := availabilityFixture(nil)

	out, err := uc.FilterByCompetencies(context.Background(), []string{"JAVA", "SPRING"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 1 || out[0].Person.ID != "P001" {
		t.Fatalf("expected only P001, got %+v", out)
	}

	out, err = uc.FilterByCompetencies(context.Background(), []string{"DEVOPS"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no match, got %+v", out)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	uc, _, _ := availabilityFixture(newMemCache())

	first, err := uc.FilterByMinimumRating(context.Background(), []string{"JAVA"}, 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.FilterByMinimumRating(context.Background(), []string{"JAVA"}, 4)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("same filter must give the same result: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Person.ID != second[i].Person.ID {
			t.Fatalf("same filter must give the same people")
		}
	}
}
