package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	consultationRepo "nurturebloom/database/repository/consultation"
	"nurturebloom/models"
	"nurturebloom/utils"
)

var errConsultationNotFound = utils.NewAppError(utils.KindNotFound, "Consultation not found")

func (s *DefaultConsultationService) Book(ctx context.Context, actor models.Actor, input models.BookConsultationInput) (*models.ConsultationView, error) {
	window := models.TimeWindow{Start: input.Date, DurationMinutes: input.Duration}
	if err := window.Validate(); err != nil {
		return nil, utils.ErrInvalidWindow
	}

	professional, err := s.Users.GetByID(ctx, input.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load professional %s: %w", input.ProfessionalID, err)
	}
	if professional == nil || professional.Role != models.RoleProfessional {
		return nil, utils.ErrInvalidProfessional
	}

	release, err := s.lockProfessional(ctx, professional.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	conflict, err := s.hasConflict(ctx, professional.ID, window, "")
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, utils.ErrSlotUnavailable
	}

	now := s.now()
	c := &models.Consultation{
		ID:             uuid.New().String(),
		RequesterID:    actor.ID,
		ProfessionalID: professional.ID,
		Topic:          input.Topic,
		Notes:          input.Notes,
		Concerns:       input.Concerns,
		Status:         models.StatusScheduled,
		MeetingLink:    s.meetingLink(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	c.SetWindow(window)

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Consultation booked",
		zap.String("consultationId", c.ID),
		zap.String("professionalId", c.ProfessionalID),
		zap.Time("startsAt", c.Start))

	return s.view(ctx, *c)
}

func (s *DefaultConsultationService) Reschedule(ctx context.Context, id string, window models.TimeWindow, actor models.Actor) (*models.ConsultationView, error) {
	if err := window.Validate(); err != nil {
		return nil, utils.ErrInvalidWindow
	}
	return s.Update(ctx, id, models.UpdateConsultationInput{Date: &window.Start, Duration: &window.DurationMinutes}, actor)
}

// Update applies the editable fields in a single write. A new date or
// duration moves the consultation and marks it rescheduled. Whenever the
// result would block a different slot than before, the professional's
// calendar is locked and checked first.
func (s *DefaultConsultationService) Update(ctx context.Context, id string, input models.UpdateConsultationInput, actor models.Actor) (*models.ConsultationView, error) {
	if input.Status != nil && !input.Status.Valid() {
		return nil, utils.ErrInvalidStatus
	}
	c, err := s.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	moved := input.Date != nil || input.Duration != nil
	window := c.TimeWindow
	if input.Date != nil {
		window.Start = *input.Date
	}
	if input.Duration != nil {
		window.DurationMinutes = *input.Duration
	}
	if err := window.Validate(); err != nil {
		return nil, utils.ErrInvalidWindow
	}

	status := c.Status
	if moved {
		status = models.StatusRescheduled
	}
	if input.Status != nil {
		status = *input.Status
	}
	reactivated := status == models.StatusScheduled && c.Status != models.StatusScheduled

	if moved || reactivated {
		release, err := s.lockProfessional(ctx, c.ProfessionalID)
		if err != nil {
			return nil, err
		}
		defer release()

		conflict, err := s.hasConflict(ctx, c.ProfessionalID, window, c.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, utils.ErrSlotUnavailable
		}
	}

	c.SetWindow(window)
	c.Status = status
	if input.Topic != nil {
		c.Topic = *input.Topic
	}
	if input.Notes != nil {
		c.Notes = *input.Notes
	}
	if input.Concerns != nil {
		c.Concerns = *input.Concerns
	}
	c.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, notFoundOr(err)
	}
	return s.view(ctx, *c)
}

func (s *DefaultConsultationService) Get(ctx context.Context, id string, actor models.Actor) (*models.ConsultationView, error) {
	c, err := s.load(ctx, id, actor)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *c)
}

func (s *DefaultConsultationService) ListMine(ctx context.Context, actor models.Actor) ([]models.ConsultationView, error) {
	list, err := s.Repo.ListByRequester(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list)
}

func (s *DefaultConsultationService) ListForProfessional(ctx context.Context, actor models.Actor) ([]models.ConsultationView, error) {
	if actor.Role != models.RoleProfessional {
		return nil, utils.ErrNotAuthorized
	}
	list, err := s.Repo.ListByProfessional(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, list)
}

// Delete removes a consultation. Consultations that already started are kept
// as records, whoever asks.
func (s *DefaultConsultationService) Delete(ctx context.Context, id string, actor models.Actor) error {
	c, err := s.load(ctx, id, actor)
	if err != nil {
		return err
	}
	if c.Start.Before(s.now()) {
		return utils.ErrPastRecord
	}
	return notFoundOr(s.Repo.Delete(ctx, c.ID))
}

func (s *DefaultConsultationService) ListProfessionals(ctx context.Context) ([]models.PublicProfile, error) {
	return s.Users.ListByRole(ctx, models.RoleProfessional)
}

// load fetches the consultation and checks the actor may act on it.
func (s *DefaultConsultationService) load(ctx context.Context, id string, actor models.Actor) (*models.Consultation, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errConsultationNotFound
	}
	if !c.IsParticipant(actor.ID) && !actor.IsAdmin() {
		return nil, utils.ErrNotAuthorized
	}
	return c, nil
}

// notFoundOr reports a consultation removed since it was loaded as NotFound.
func notFoundOr(err error) error {
	if errors.Is(err, consultationRepo.ErrConsultationNotFound) {
		return errConsultationNotFound
	}
	return err
}

func (s *DefaultConsultationService) meetingLink() string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return strings.TrimRight(s.MeetingBaseURL, "/") + "/" + token
}

func (s *DefaultConsultationService) view(ctx context.Context, c models.Consultation) (*models.ConsultationView, error) {
	views, err := s.views(ctx, []models.Consultation{c})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// views resolves participant names. A failed lookup degrades to bare ids.
func (s *DefaultConsultationService) views(ctx context.Context, list []models.Consultation) ([]models.ConsultationView, error) {
	out := make([]models.ConsultationView, 0, len(list))
	ids := make([]string, 0, 2*len(list))
	for _, c := range list {
		ids = append(ids, c.RequesterID, c.ProfessionalID)
	}
	profiles, err := s.Users.GetPublicProfiles(ctx, ids)
	if err != nil {
		utils.GetLogger().Warn("Failed to resolve consultation participants", zap.Error(err))
		profiles = nil
	}
	for _, c := range list {
		v := models.ConsultationView{Consultation: c}
		if p, ok := profiles[c.RequesterID]; ok {
			v.Requester = &p
		}
		if p, ok := profiles[c.ProfessionalID]; ok {
			v.Professional = &p
		}
		out = append(out, v)
	}
	return out, nil
}
