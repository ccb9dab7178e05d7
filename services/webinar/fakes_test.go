package webinar

import (
	"context"
	"sort"
	"sync"
	"time"

	userRepo "nurturebloom/database/repository/user"
	webinarRepo "nurturebloom/database/repository/webinar"
	"nurturebloom/models"
)

var _ webinarRepo.WebinarRepository = (*memWebinarRepo)(nil)
var _ userRepo.UserRepository = (*memUserRepo)(nil)

// memWebinarRepo applies the same guards as the Mongo filters, atomically.
type memWebinarRepo struct {
	mu    sync.Mutex
	items map[string]models.Webinar

	// beforeUpdate runs ahead of the guarded write, standing in for a
	// concurrent request that lands between the read and the write.
	beforeUpdate func()
}

func newMemWebinarRepo() *memWebinarRepo {
	return &memWebinarRepo{items: map[string]models.Webinar{}}
}

func clone(w models.Webinar) models.Webinar {
	w.Registrations = append([]models.Registration{}, w.Registrations...)
	w.Tags = append([]string{}, w.Tags...)
	return w
}

func (r *memWebinarRepo) Create(_ context.Context, w *models.Webinar) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[w.ID] = clone(*w)
	return nil
}

func (r *memWebinarRepo) GetByID(_ context.Context, id string) (*models.Webinar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	w = clone(w)
	return &w, nil
}

func (r *memWebinarRepo) Update(_ context.Context, w *models.Webinar) error {
	if r.beforeUpdate != nil {
		r.beforeUpdate()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[w.ID]
	if !ok || len(stored.Registrations) > w.Capacity {
		return webinarRepo.ErrConditionFailed
	}
	updated := clone(*w)
	updated.Registrations = stored.Registrations
	r.items[w.ID] = updated
	return nil
}

func (r *memWebinarRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return webinarRepo.ErrWebinarNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memWebinarRepo) AddRegistration(_ context.Context, webinarID string, reg models.Registration, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.items[webinarID]
	if !ok || !w.Start.After(now) || len(w.Registrations) >= w.Capacity {
		return webinarRepo.ErrConditionFailed
	}
	if _, dup := w.FindRegistration(reg.AttendeeID); dup {
		return webinarRepo.ErrConditionFailed
	}
	w.Registrations = append(w.Registrations, reg)
	r.items[webinarID] = w
	return nil
}

func (r *memWebinarRepo) RemoveRegistration(_ context.Context, webinarID, attendeeID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.items[webinarID]
	if !ok || !w.Start.After(now) {
		return webinarRepo.ErrConditionFailed
	}
	if _, found := w.FindRegistration(attendeeID); !found {
		return webinarRepo.ErrConditionFailed
	}
	kept := []models.Registration{}
	for _, reg := range w.Registrations {
		if reg.AttendeeID != attendeeID {
			kept = append(kept, reg)
		}
	}
	w.Registrations = kept
	r.items[webinarID] = w
	return nil
}

func (r *memWebinarRepo) SetAttendance(_ context.Context, webinarID, attendeeID string, attended bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.items[webinarID]
	if !ok {
		return webinarRepo.ErrConditionFailed
	}
	for i := range w.Registrations {
		if w.Registrations[i].AttendeeID == attendeeID {
			w.Registrations[i].Attended = attended
			r.items[webinarID] = w
			return nil
		}
	}
	return webinarRepo.ErrConditionFailed
}

func (r *memWebinarRepo) list(match func(models.Webinar) bool, asc bool) []models.Webinar {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Webinar{}
	for _, w := range r.items {
		if match(w) {
			out = append(out, clone(w))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if asc {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].Start.After(out[j].Start)
	})
	return out
}

func (r *memWebinarRepo) ListUpcoming(_ context.Context, now time.Time) ([]models.Webinar, error) {
	return r.list(func(w models.Webinar) bool { return !w.Start.Before(now) }, true), nil
}

func (r *memWebinarRepo) ListAll(_ context.Context) ([]models.Webinar, error) {
	return r.list(func(models.Webinar) bool { return true }, false), nil
}

func (r *memWebinarRepo) ListRecorded(_ context.Context) ([]models.Webinar, error) {
	return r.list(func(w models.Webinar) bool { return w.IsRecorded && w.RecordingURL != "" }, false), nil
}

func (r *memWebinarRepo) ListByTag(_ context.Context, tag string) ([]models.Webinar, error) {
	return r.list(func(w models.Webinar) bool {
		for _, t := range w.Tags {
			if t == tag {
				return true
			}
		}
		return false
	}, false), nil
}

func (r *memWebinarRepo) ListByAttendee(_ context.Context, attendeeID string) ([]models.Webinar, error) {
	return r.list(func(w models.Webinar) bool {
		_, ok := w.FindRegistration(attendeeID)
		return ok
	}, true), nil
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

func (r *memUserRepo) GetByEmail(context.Context, string) (*models.User, error) { return nil, nil }

func (r *memUserRepo) GetPublicProfiles(_ context.Context, ids []string) (map[string]models.PublicProfile, error) {
	out := map[string]models.PublicProfile{}
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out[id] = u.Public()
		}
	}
	return out, nil
}

func (r *memUserRepo) ListByRole(context.Context, models.Role) ([]models.PublicProfile, error) {
	return nil, nil
}

func (r *memUserRepo) Create(context.Context, *models.User) error { return nil }

func (r *memUserRepo) SetRole(context.Context, string, models.Role) error { return nil }

// recordingScheduler tracks which reminders are currently queued.
type recordingScheduler struct {
	mu     sync.Mutex
	queued map[string]time.Time
}

func newRecordingScheduler() *recordingScheduler {
	return &recordingScheduler{queued: map[string]time.Time{}}
}

func (s *recordingScheduler) ScheduleWebinarReminder(_ context.Context, w models.Webinar, attendeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queued[w.ID+"/"+attendeeID] = w.Start
	return nil
}

func (s *recordingScheduler) CancelWebinarReminder(_ context.Context, webinarID, attendeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.queued, webinarID+"/"+attendeeID)
	return nil
}
