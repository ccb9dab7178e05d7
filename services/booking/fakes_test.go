package booking

import (
	"context"
	"sort"
	"sync"

	consultationRepo "nurturebloom/database/repository/consultation"
	userRepo "nurturebloom/database/repository/user"
	"nurturebloom/models"
)

var _ consultationRepo.ConsultationRepository = (*memConsultationRepo)(nil)
var _ userRepo.UserRepository = (*memUserRepo)(nil)

type memConsultationRepo struct {
	mu    sync.Mutex
	items map[string]models.Consultation

	// updateErr and deleteErr, when set, fail the next writes.
	updateErr error
	deleteErr error
	updates   int
}

func newMemConsultationRepo() *memConsultationRepo {
	return &memConsultationRepo{items: map[string]models.Consultation{}}
}

func (r *memConsultationRepo) Create(_ context.Context, c *models.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID] = *c
	return nil
}

func (r *memConsultationRepo) GetByID(_ context.Context, id string) (*models.Consultation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *memConsultationRepo) ListScheduledOverlapping(_ context.Context, professionalID string, window models.TimeWindow, excludeID string) ([]models.Consultation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Consultation
	for _, c := range r.items {
		if c.ProfessionalID != professionalID || c.Status != models.StatusScheduled || c.ID == excludeID {
			continue
		}
		if c.Start.Before(window.End()) && c.EndsAt.After(window.Start) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memConsultationRepo) list(match func(models.Consultation) bool) []models.Consultation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Consultation{}
	for _, c := range r.items {
		if match(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

func (r *memConsultationRepo) ListByRequester(_ context.Context, requesterID string) ([]models.Consultation, error) {
	return r.list(func(c models.Consultation) bool { return c.RequesterID == requesterID }), nil
}

func (r *memConsultationRepo) ListByProfessional(_ context.Context, professionalID string) ([]models.Consultation, error) {
	return r.list(func(c models.Consultation) bool { return c.ProfessionalID == professionalID }), nil
}

func (r *memConsultationRepo) Update(_ context.Context, c *models.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.items[c.ID]; !ok {
		return consultationRepo.ErrConsultationNotFound
	}
	r.updates++
	r.items[c.ID] = *c
	return nil
}

func (r *memConsultationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.items[id]; !ok {
		return consultationRepo.ErrConsultationNotFound
	}
	delete(r.items, id)
	return nil
}

type memUserRepo struct {
	users map[string]models.User
}

func newMemUserRepo(users ...models.User) *memUserRepo {
	r := &memUserRepo{users: map[string]models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetPublicProfiles(_ context.Context, ids []string) (map[string]models.PublicProfile, error) {
	out := map[string]models.PublicProfile{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u.Public()
		}
	}
	return out, nil
}

func (r *memUserRepo) ListByRole(_ context.Context, role models.Role) ([]models.PublicProfile, error) {
	out := []models.PublicProfile{}
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u.Public())
		}
	}
	return out, nil
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) SetRole(_ context.Context, id string, role models.Role) error {
	u := r.users[id]
	u.Role = role
	r.users[id] = u
	return nil
}

// mutexLocker stands in for the Redis lock with one mutex per key.
type mutexLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *mutexLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = map[string]*sync.Mutex{}
	}
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}
