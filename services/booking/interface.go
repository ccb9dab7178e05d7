package booking

import (
	"context"
	"time"

	consultationRepo "nurturebloom/database/repository/consultation"
	userRepo "nurturebloom/database/repository/user"
	"nurturebloom/models"
)

// ConsultationService manages one-on-one consultations between users and professionals.
type ConsultationService interface {
	Book(ctx context.Context, actor models.Actor, input models.BookConsultationInput) (*models.ConsultationView, error)
	Reschedule(ctx context.Context, id string, window models.TimeWindow, actor models.Actor) (*models.ConsultationView, error)
	Update(ctx context.Context, id string, input models.UpdateConsultationInput, actor models.Actor) (*models.ConsultationView, error)
	Get(ctx context.Context, id string, actor models.Actor) (*models.ConsultationView, error)
	ListMine(ctx context.Context, actor models.Actor) ([]models.ConsultationView, error)
	ListForProfessional(ctx context.Context, actor models.Actor) ([]models.ConsultationView, error)
	Delete(ctx context.Context, id string, actor models.Actor) error
	ListProfessionals(ctx context.Context) ([]models.PublicProfile, error)
}

// Locker serialises check-then-write sequences on a shared key.
type Locker interface {
	Lock(ctx context.Context, key string) (release func(), err error)
}

// DefaultConsultationService implements ConsultationService.
type DefaultConsultationService struct {
	Repo           consultationRepo.ConsultationRepository
	Users          userRepo.UserRepository
	Locker         Locker
	MeetingBaseURL string

	now func() time.Time
}

func NewConsultationService(
	repo consultationRepo.ConsultationRepository,
	users userRepo.UserRepository,
	locker Locker,
	meetingBaseURL string,
) *DefaultConsultationService {
	return &DefaultConsultationService{
		Repo:           repo,
		Users:          users,
		Locker:         locker,
		MeetingBaseURL: meetingBaseURL,
		now:            time.Now,
	}
}
