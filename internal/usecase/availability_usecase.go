package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/domain/matching"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"
)

// AvailablePerson is a person currently on the market, with the window that
// makes them so.
type AvailablePerson struct {
	Person  repository.Person
	Profile repository.AvailabilityProfile
}

type AvailabilityUsecase interface {
	ListProfiles(ctx context.Context) ([]repository.AvailabilityProfile, error)
	GetProfile(ctx context.Context, personID string) (repository.AvailabilityProfile, error)
	CreateProfile(ctx context.Context, p repository.AvailabilityProfile) (repository.AvailabilityProfile, error)
	UpdateProfile(ctx context.Context, p repository.AvailabilityProfile) (repository.AvailabilityProfile, error)
	DeleteProfile(ctx context.Context, personID string) error

	AvailablePeople(ctx context.Context) ([]AvailablePerson, error)
	MatrixForAvailablePerson(ctx context.Context, personID string) ([]repository.SkillEntry, error)
	FilterByMinimumRating(ctx context.Context, labels []string, min int) ([]AvailablePerson, error)
	FilterByCompetencies(ctx context.Context, labels []string) ([]AvailablePerson, error)
}

type Availability struct {
	profiles repository.ProfileRepository
	people   repository.PersonRepository
	matrix   repository.SkillMatrixRepository
	cache    QueryCache

	now func() time.Time
}

func NewAvailabilityUsecase(
	profiles repository.ProfileRepository,
	people repository.PersonRepository,
	matrix repository.SkillMatrixRepository,
	cache QueryCache,
) *Availability {
	return &Availability{
		profiles: profiles,
		people:   people,
		matrix:   matrix,
		cache:    cache,
		now:      time.Now,
	}
}

func (u *Availability) ListProfiles(ctx context.Context) ([]repository.AvailabilityProfile, error) {
	items, err := u.profiles.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Availability) GetProfile(ctx context.Context, personID string) (repository.AvailabilityProfile, error) {
	p, err := u.profiles.GetByPersonID(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.AvailabilityProfile{}, ErrNotFound
		}
		return repository.AvailabilityProfile{}, ErrInternal
	}
	return p, nil
}

func (u *Availability) CreateProfile(ctx context.Context, p repository.AvailabilityProfile) (repository.AvailabilityProfile, error) {
	p.PersonID = strings.TrimSpace(p.PersonID)
	if p.PersonID == "" {
		return repository.AvailabilityProfile{}, ErrInvalidInput
	}

	exists, err := u.people.Exists(ctx, p.PersonID)
	if err != nil {
		return repository.AvailabilityProfile{}, ErrInternal
	}
	if !exists {
		return repository.AvailabilityProfile{}, ErrNotFound
	}

	if err := u.profiles.Create(ctx, p); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return repository.AvailabilityProfile{}, ErrAlreadyExists
		case errors.Is(err, repository.ErrReferenced):
			return repository.AvailabilityProfile{}, ErrNotFound
		default:
			return repository.AvailabilityProfile{}, ErrInternal
		}
	}

	u.invalidate(ctx)
	return p, nil
}

func (u *Availability) UpdateProfile(ctx context.Context, p repository.AvailabilityProfile) (repository.AvailabilityProfile, error) {
	p.PersonID = strings.TrimSpace(p.PersonID)
	if p.PersonID == "" {
		return repository.AvailabilityProfile{}, ErrInvalidInput
	}

	if err := u.profiles.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.AvailabilityProfile{}, ErrNotFound
		}
		return repository.AvailabilityProfile{}, ErrInternal
	}

	u.invalidate(ctx)
	return p, nil
}

func (u *Availability) DeleteProfile(ctx context.Context, personID string) error {
	if err := u.profiles.Delete(ctx, personID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx)
	return nil
}

// AvailablePeople returns everyone whose availability window covers now,
// bounds inclusive.
func (u *Availability) AvailablePeople(ctx context.Context) ([]AvailablePerson, error) {
	if u.cache != nil {
		var cached []AvailablePerson
		if hit, err := u.cache.GetJSON(ctx, availableCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := u.availablePeople(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, availableCacheKey, out, availableCacheTTL)
	}
	return out, nil
}

// MatrixForAvailablePerson returns the person's full skill matrix, but only
// while the person is on the market. The availability check runs on the
// profile itself, independent of the general matrix lookup.
func (u *Availability) MatrixForAvailablePerson(ctx context.Context, personID string) ([]repository.SkillEntry, error) {
	p, err := u.profiles.GetByPersonID(ctx, personID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInternal
	}

	w := matching.Window{Start: p.WindowStart, End: p.WindowEnd}
	if !w.Contains(u.now()) {
		return nil, ErrPersonUnavailable
	}

	entries, err := u.matrix.FindByPerson(ctx, personID)
	if err != nil {
		return nil, ErrInternal
	}
	return entries, nil
}

// FilterByMinimumRating keeps the available people whose matrix holds every
// listed competency at a rating of at least min. Partial matches are
// excluded.
func (u *Availability) FilterByMinimumRating(ctx context.Context, labels []string, min int) ([]AvailablePerson, error) {
	labels = cleanLabels(labels)
	if len(labels) == 0 || min <= 0 {
		return nil, ErrInvalidInput
	}

	key := availabilityFilterCacheKey("notes", labels, min)
	return u.filter(ctx, key, func(set matching.SkillSet) bool {
		return matching.MeetsMinimum(set, labels, min)
	})
}

// FilterByCompetencies keeps the available people whose matrix covers every
// listed competency, ratings ignored.
func (u *Availability) FilterByCompetencies(ctx context.Context, labels []string) ([]AvailablePerson, error) {
	labels = cleanLabels(labels)
	if len(labels) == 0 {
		return nil, ErrInvalidInput
	}

	key := availabilityFilterCacheKey("competences", labels, 0)
	return u.filter(ctx, key, func(set matching.SkillSet) bool {
		return matching.Possesses(set, labels)
	})
}

func (u *Availability) filter(ctx context.Context, cacheKey string, keep func(matching.SkillSet) bool) ([]AvailablePerson, error) {
	if u.cache != nil {
		var cached []AvailablePerson
		if hit, err := u.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	availables, err := u.availablePeople(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(availables))
	for _, a := range availables {
		ids = append(ids, a.Person.ID)
	}

	entriesByPerson, err := u.matrix.FindByPersonIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]AvailablePerson, 0)
	for _, a := range availables {
		set := make(matching.SkillSet)
		for _, e := range entriesByPerson[a.Person.ID] {
			set[e.CompetencyLabel] = e.RatingValue
		}
		if keep(set) {
			out = append(out, a)
		}
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, availableCacheTTL)
	}
	return out, nil
}

func (u *Availability) availablePeople(ctx context.Context) ([]AvailablePerson, error) {
	profiles, err := u.profiles.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	people, err := u.people.GetAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	byID := make(map[string]repository.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}

	now := u.now()
	out := make([]AvailablePerson, 0)
	for _, p := range profiles {
		w := matching.Window{Start: p.WindowStart, End: p.WindowEnd}
		if !w.Contains(now) {
			continue
		}
		person, ok := byID[p.PersonID]
		if !ok {
			continue
		}
		out = append(out, AvailablePerson{Person: person, Profile: p})
	}
	return out, nil
}

func (u *Availability) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, availableCachePattern)
}

func cleanLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
