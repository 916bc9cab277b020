package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/domain/request"
	"github.com/david-lacoste-pmu/matrix-competence-sub000/internal/repository"

	"github.com/google/uuid"
)

type mockCompetencyRepo struct {
	items map[string]repository.Competency
	inUse bool
}

func newMockCompetencyRepo(items ...repository.Competency) *mockCompetencyRepo {
	m := &mockCompetencyRepo{items: make(map[string]repository.Competency)}
	for _, it := range items {
		m.items[it.Label] = it
	}
	return m
}

func (m *mockCompetencyRepo) GetAll(context.Context) ([]repository.Competency, error) {
	out := make([]repository.Competency, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockCompetencyRepo) GetByLabel(_ context.Context, label string) (repository.Competency, error) {
	it, ok := m.items[label]
	if !ok {
		return repository.Competency{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockCompetencyRepo) Exists(_ context.Context, label string) (bool, error) {
	_, ok := m.items[label]
	return ok, nil
}

func (m *mockCompetencyRepo) InUse(context.Context, string) (bool, error) { return m.inUse, nil }

func (m *mockCompetencyRepo) Create(_ context.Context, c repository.Competency) error {
	if _, ok := m.items[c.Label]; ok {
		return repository.ErrDuplicate
	}
	m.items[c.Label] = c
	return nil
}

func (m *mockCompetencyRepo) Update(_ context.Context, c repository.Competency) error {
	if _, ok := m.items[c.Label]; !ok {
		return repository.ErrNotFound
	}
	m.items[c.Label] = c
	return nil
}

func (m *mockCompetencyRepo) Delete(_ context.Context, label string) error {
	if _, ok := m.items[label]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, label)
	return nil
}

type mockRatingRepo struct {
	items map[int]repository.Rating
	inUse bool
}

func newMockRatingRepo(items ...repository.Rating) *mockRatingRepo {
	m := &mockRatingRepo{items: make(map[int]repository.Rating)}
	for _, it := range items {
		m.items[it.Value] = it
	}
	return m
}

func (m *mockRatingRepo) GetAll(context.Context) ([]repository.Rating, error) {
	out := make([]repository.Rating, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockRatingRepo) GetByValue(_ context.Context, value int) (repository.Rating, error) {
	it, ok := m.items[value]
	if !ok {
		return repository.Rating{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockRatingRepo) Exists(_ context.Context, value int) (bool, error) {
	_, ok := m.items[value]
	return ok, nil
}

func (m *mockRatingRepo) InUse(context.Context, int) (bool, error) { return m.inUse, nil }

func (m *mockRatingRepo) Create(_ context.Context, n repository.Rating) error {
	if _, ok := m.items[n.Value]; ok {
		return repository.ErrDuplicate
	}
	m.items[n.Value] = n
	return nil
}

func (m *mockRatingRepo) Update(_ context.Context, n repository.Rating) error {
	if _, ok := m.items[n.Value]; !ok {
		return repository.ErrNotFound
	}
	m.items[n.Value] = n
	return nil
}

func (m *mockRatingRepo) Delete(_ context.Context, value int) error {
	if _, ok := m.items[value]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, value)
	return nil
}

type mockTeamRepo struct {
	items map[string]repository.Team
	inUse bool
}

func newMockTeamRepo(items ...repository.Team) *mockTeamRepo {
	m := &mockTeamRepo{items: make(map[string]repository.Team)}
	for _, it := range items {
		m.items[it.Code] = it
	}
	return m
}

func (m *mockTeamRepo) GetAll(context.Context) ([]repository.Team, error) {
	out := make([]repository.Team, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockTeamRepo) GetByCode(_ context.Context, code string) (repository.Team, error) {
	it, ok := m.items[code]
	if !ok {
		return repository.Team{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockTeamRepo) Exists(_ context.Context, code string) (bool, error) {
	_, ok := m.items[code]
	return ok, nil
}

func (m *mockTeamRepo) InUse(context.Context, string) (bool, error) { return m.inUse, nil }

func (m *mockTeamRepo) Create(_ context.Context, t repository.Team) error {
	if _, ok := m.items[t.Code]; ok {
		return repository.ErrDuplicate
	}
	m.items[t.Code] = t
	return nil
}

func (m *mockTeamRepo) Update(_ context.Context, t repository.Team) error {
	if _, ok := m.items[t.Code]; !ok {
		return repository.ErrNotFound
	}
	m.items[t.Code] = t
	return nil
}

func (m *mockTeamRepo) Delete(_ context.Context, code string) error {
	if _, ok := m.items[code]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, code)
	return nil
}

type mockGroupRepo struct {
	items map[string]repository.Group
	inUse bool
}

func newMockGroupRepo(items ...repository.Group) *mockGroupRepo {
	m := &mockGroupRepo{items: make(map[string]repository.Group)}
	for _, it := range items {
		m.items[it.Code] = it
	}
	return m
}

func (m *mockGroupRepo) GetAll(context.Context) ([]repository.Group, error) {
	out := make([]repository.Group, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockGroupRepo) GetByCode(_ context.Context, code string) (repository.Group, error) {
	it, ok := m.items[code]
	if !ok {
		return repository.Group{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockGroupRepo) Exists(_ context.Context, code string) (bool, error) {
	_, ok := m.items[code]
	return ok, nil
}

func (m *mockGroupRepo) InUse(context.Context, string) (bool, error) { return m.inUse, nil }

func (m *mockGroupRepo) Create(_ context.Context, g repository.Group) error {
	if _, ok := m.items[g.Code]; ok {
		return repository.ErrDuplicate
	}
	m.items[g.Code] = g
	return nil
}

func (m *mockGroupRepo) Update(_ context.Context, g repository.Group) error {
	if _, ok := m.items[g.Code]; !ok {
		return repository.ErrNotFound
	}
	m.items[g.Code] = g
	return nil
}

func (m *mockGroupRepo) Delete(_ context.Context, code string) error {
	if _, ok := m.items[code]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, code)
	return nil
}

type mockPersonRepo struct {
	items map[string]repository.Person
}

func newMockPersonRepo(items ...repository.Person) *mockPersonRepo {
	m := &mockPersonRepo{items: make(map[string]repository.Person)}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *mockPersonRepo) GetAll(context.Context) ([]repository.Person, error) {
	out := make([]repository.Person, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockPersonRepo) GetByID(_ context.Context, id string) (repository.Person, error) {
	it, ok := m.items[id]
	if !ok {
		return repository.Person{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockPersonRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := m.items[id]
	return ok, nil
}

func (m *mockPersonRepo) FindByTeamCode(_ context.Context, teamCode string) ([]repository.Person, error) {
	out := make([]repository.Person, 0)
	for _, it := range m.items {
		if it.TeamCode != nil && *it.TeamCode == teamCode {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockPersonRepo) Create(_ context.Context, p repository.Person) error {
	if _, ok := m.items[p.ID]; ok {
		return repository.ErrDuplicate
	}
	m.items[p.ID] = p
	return nil
}

func (m *mockPersonRepo) Update(_ context.Context, p repository.Person) error {
	if _, ok := m.items[p.ID]; !ok {
		return repository.ErrNotFound
	}
	m.items[p.ID] = p
	return nil
}

func (m *mockPersonRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type mockProfileRepo struct {
	items      map[string]repository.AvailabilityProfile
	getAllHits int
}

func newMockProfileRepo(items ...repository.AvailabilityProfile) *mockProfileRepo {
	m := &mockProfileRepo{items: make(map[string]repository.AvailabilityProfile)}
	for _, it := range items {
		m.items[it.PersonID] = it
	}
	return m
}

func (m *mockProfileRepo) GetAll(context.Context) ([]repository.AvailabilityProfile, error) {
	m.getAllHits++
	out := make([]repository.AvailabilityProfile, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockProfileRepo) GetByPersonID(_ context.Context, personID string) (repository.AvailabilityProfile, error) {
	it, ok := m.items[personID]
	if !ok {
		return repository.AvailabilityProfile{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockProfileRepo) Create(_ context.Context, p repository.AvailabilityProfile) error {
	if _, ok := m.items[p.PersonID]; ok {
		return repository.ErrDuplicate
	}
	m.items[p.PersonID] = p
	return nil
}

func (m *mockProfileRepo) Update(_ context.Context, p repository.AvailabilityProfile) error {
	if _, ok := m.items[p.PersonID]; !ok {
		return repository.ErrNotFound
	}
	m.items[p.PersonID] = p
	return nil
}

func (m *mockProfileRepo) Delete(_ context.Context, personID string) error {
	if _, ok := m.items[personID]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, personID)
	return nil
}

type matrixKey struct{ person, competency string }

type mockMatrixRepo struct {
	items map[matrixKey]repository.SkillEntry
}

func newMockMatrixRepo(items ...repository.SkillEntry) *mockMatrixRepo {
	m := &mockMatrixRepo{items: make(map[matrixKey]repository.SkillEntry)}
	for _, it := range items {
		m.items[matrixKey{it.PersonID, it.CompetencyLabel}] = it
	}
	return m
}

func (m *mockMatrixRepo) Get(_ context.Context, personID, competencyLabel string) (repository.SkillEntry, error) {
	it, ok := m.items[matrixKey{personID, competencyLabel}]
	if !ok {
		return repository.SkillEntry{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockMatrixRepo) FindByPerson(_ context.Context, personID string) ([]repository.SkillEntry, error) {
	out := make([]repository.SkillEntry, 0)
	for _, it := range m.items {
		if it.PersonID == personID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockMatrixRepo) FindByCompetency(_ context.Context, competencyLabel string) ([]repository.SkillEntry, error) {
	out := make([]repository.SkillEntry, 0)
	for _, it := range m.items {
		if it.CompetencyLabel == competencyLabel {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockMatrixRepo) FindByPersonIDs(_ context.Context, personIDs []string) (map[string][]repository.SkillEntry, error) {
	want := make(map[string]struct{}, len(personIDs))
	for _, id := range personIDs {
		want[id] = struct{}{}
	}
	out := make(map[string][]repository.SkillEntry)
	for _, it := range m.items {
		if _, ok := want[it.PersonID]; ok {
			out[it.PersonID] = append(out[it.PersonID], it)
		}
	}
	return out, nil
}

func (m *mockMatrixRepo) Create(_ context.Context, e repository.SkillEntry) error {
	key := matrixKey{e.PersonID, e.CompetencyLabel}
	if _, ok := m.items[key]; ok {
		return repository.ErrDuplicate
	}
	m.items[key] = e
	return nil
}

func (m *mockMatrixRepo) Update(_ context.Context, e repository.SkillEntry) error {
	key := matrixKey{e.PersonID, e.CompetencyLabel}
	if _, ok := m.items[key]; !ok {
		return repository.ErrNotFound
	}
	m.items[key] = e
	return nil
}

func (m *mockMatrixRepo) Delete(_ context.Context, personID, competencyLabel string) error {
	key := matrixKey{personID, competencyLabel}
	if _, ok := m.items[key]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, key)
	return nil
}

type mockRequestRepo struct {
	items map[uuid.UUID]request.StaffingRequest
}

func newMockRequestRepo(items ...request.StaffingRequest) *mockRequestRepo {
	m := &mockRequestRepo{items: make(map[uuid.UUID]request.StaffingRequest)}
	for _, it := range items {
		m.items[it.ID] = it
	}
	return m
}

func (m *mockRequestRepo) GetAll(context.Context) ([]request.StaffingRequest, error) {
	out := make([]request.StaffingRequest, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockRequestRepo) GetByID(_ context.Context, id uuid.UUID) (request.StaffingRequest, error) {
	it, ok := m.items[id]
	if !ok {
		return request.StaffingRequest{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockRequestRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.items[id]
	return ok, nil
}

func (m *mockRequestRepo) FindByRequester(_ context.Context, requester string) ([]request.StaffingRequest, error) {
	out := make([]request.StaffingRequest, 0)
	for _, it := range m.items {
		if it.Requester == requester {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockRequestRepo) FindByCompetency(_ context.Context, competencyLabel string) ([]request.StaffingRequest, error) {
	out := make([]request.StaffingRequest, 0)
	for _, it := range m.items {
		for _, rq := range it.Requirements {
			if rq.CompetencyLabel == competencyLabel {
				out = append(out, it)
				break
			}
		}
	}
	return out, nil
}

func (m *mockRequestRepo) FindActiveAt(_ context.Context, date time.Time) ([]request.StaffingRequest, error) {
	out := make([]request.StaffingRequest, 0)
	for _, it := range m.items {
		if it.ActiveAt(date) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockRequestRepo) Create(_ context.Context, r request.StaffingRequest) error {
	if _, ok := m.items[r.ID]; ok {
		return repository.ErrDuplicate
	}
	m.items[r.ID] = r
	return nil
}

func (m *mockRequestRepo) Update(_ context.Context, r request.StaffingRequest) error {
	if _, ok := m.items[r.ID]; !ok {
		return repository.ErrNotFound
	}
	m.items[r.ID] = r
	return nil
}

func (m *mockRequestRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type mockUserRepo struct {
	items map[string]repository.User
}

func newMockUserRepo(items ...repository.User) *mockUserRepo {
	m := &mockUserRepo{items: make(map[string]repository.User)}
	for _, it := range items {
		m.items[it.Matricule] = it
	}
	return m
}

func (m *mockUserRepo) GetAll(context.Context) ([]repository.User, error) {
	out := make([]repository.User, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockUserRepo) GetByMatricule(_ context.Context, matricule string) (repository.User, error) {
	it, ok := m.items[matricule]
	if !ok {
		return repository.User{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockUserRepo) Exists(_ context.Context, matricule string) (bool, error) {
	_, ok := m.items[matricule]
	return ok, nil
}

func (m *mockUserRepo) Create(_ context.Context, u repository.User) error {
	if _, ok := m.items[u.Matricule]; ok {
		return repository.ErrDuplicate
	}
	m.items[u.Matricule] = u
	return nil
}

func (m *mockUserRepo) Update(_ context.Context, u repository.User) error {
	if _, ok := m.items[u.Matricule]; !ok {
		return repository.ErrNotFound
	}
	m.items[u.Matricule] = u
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, matricule string) error {
	if _, ok := m.items[matricule]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, matricule)
	return nil
}

type mockHabilitationRepo struct {
	items map[string]repository.Habilitation
	inUse bool
}

func newMockHabilitationRepo(items ...repository.Habilitation) *mockHabilitationRepo {
	m := &mockHabilitationRepo{items: make(map[string]repository.Habilitation)}
	for _, it := range items {
		m.items[it.Code] = it
	}
	return m
}

func (m *mockHabilitationRepo) GetAll(context.Context) ([]repository.Habilitation, error) {
	out := make([]repository.Habilitation, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockHabilitationRepo) GetByCode(_ context.Context, code string) (repository.Habilitation, error) {
	it, ok := m.items[code]
	if !ok {
		return repository.Habilitation{}, repository.ErrNotFound
	}
	return it, nil
}

func (m *mockHabilitationRepo) Exists(_ context.Context, code string) (bool, error) {
	_, ok := m.items[code]
	return ok, nil
}

func (m *mockHabilitationRepo) InUse(context.Context, string) (bool, error) { return m.inUse, nil }

func (m *mockHabilitationRepo) Create(_ context.Context, h repository.Habilitation) error {
	if _, ok := m.items[h.Code]; ok {
		return repository.ErrDuplicate
	}
	m.items[h.Code] = h
	return nil
}

func (m *mockHabilitationRepo) Update(_ context.Context, h repository.Habilitation) error {
	if _, ok := m.items[h.Code]; !ok {
		return repository.ErrNotFound
	}
	m.items[h.Code] = h
	return nil
}

func (m *mockHabilitationRepo) Delete(_ context.Context, code string) error {
	if _, ok := m.items[code]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, code)
	return nil
}

type recordingNotifier struct {
	created []uuid.UUID
	updated []uuid.UUID
	deleted []uuid.UUID
}

func (n *recordingNotifier) RequestCreated(id uuid.UUID) { n.created = append(n.created, id) }
func (n *recordingNotifier) RequestUpdated(id uuid.UUID) { n.updated = append(n.updated, id) }
func (n *recordingNotifier) RequestDeleted(id uuid.UUID) { n.deleted = append(n.deleted, id) }

// memCache is an in-process QueryCache used to verify read-through and
// invalidation behavior.
type memCache struct {
	data    map[string][]byte
	deletes int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func (c *memCache) DeleteByPattern(context.Context, string) error {
	c.deletes++
	c.data = make(map[string][]byte)
	return nil
}
