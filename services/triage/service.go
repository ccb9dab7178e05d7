package triage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	symptomRepo "nurturebloom/database/repository/symptom"
	"nurturebloom/models"
	"nurturebloom/utils"
)

// TriageService runs symptom checks against the reference catalogue.
type TriageService interface {
	ListSymptoms(ctx context.Context) ([]models.Symptom, error)
	ListByCategory(ctx context.Context, category models.SymptomCategory) ([]models.Symptom, error)
	Check(ctx context.Context, actor models.Actor, input models.SymptomCheckInput) (*models.SymptomCheckView, error)
	History(ctx context.Context, actor models.Actor) ([]models.SymptomCheckView, error)
	GetCheck(ctx context.Context, id string, actor models.Actor) (*models.SymptomCheckView, error)
	Seed(ctx context.Context, actor models.Actor) (int, error)
}

// DefaultTriageService implements TriageService.
type DefaultTriageService struct {
	Repo symptomRepo.SymptomRepository

	now func() time.Time
}

func NewTriageService(repo symptomRepo.SymptomRepository) *DefaultTriageService {
	return &DefaultTriageService{Repo: repo, now: time.Now}
}

func (s *DefaultTriageService) ListSymptoms(ctx context.Context) ([]models.Symptom, error) {
	return s.Repo.ListAll(ctx)
}

func (s *DefaultTriageService) ListByCategory(ctx context.Context, category models.SymptomCategory) ([]models.Symptom, error) {
	if !category.Valid() {
		return nil, utils.NewAppError(utils.KindInvalidInput, "Unknown symptom category")
	}
	return s.Repo.ListByCategory(ctx, category)
}

// Check assesses the reported symptoms and records the outcome. References
// that match no catalogue entry are ignored.
func (s *DefaultTriageService) Check(ctx context.Context, actor models.Actor, input models.SymptomCheckInput) (*models.SymptomCheckView, error) {
	if len(input.Symptoms) == 0 {
		return nil, utils.ErrNoValidSymptoms
	}
	reported := make([]models.ReportedSymptom, 0, len(input.Symptoms))
	for _, r := range input.Symptoms {
		if r.SelfSeverity < 1 || r.SelfSeverity > 10 {
			return nil, utils.NewAppError(utils.KindInvalidInput, "Severity must be between 1 and 10")
		}
		if strings.TrimSpace(r.Duration) == "" {
			r.Duration = utils.DefaultDurationText
		}
		reported = append(reported, r)
	}

	resolved, err := s.Repo.GetByIDs(ctx, symptomIDs(reported))
	if err != nil {
		return nil, err
	}
	assessment, ok := Assess(resolved)
	if !ok {
		return nil, utils.ErrNoValidSymptoms
	}

	check := &models.SymptomCheck{
		ID:                   uuid.New().String(),
		UserID:               actor.ID,
		Symptoms:             reported,
		Tier:                 assessment.Tier,
		Assessment:           assessment.Assessment,
		Recommendation:       assessment.Recommendation,
		SeekMedicalAttention: assessment.SeekMedicalAttention,
		CreatedAt:            s.now(),
	}
	if err := s.Repo.CreateCheck(ctx, check); err != nil {
		return nil, err
	}
	if check.SeekMedicalAttention {
		utils.GetLogger().Info("Symptom check flagged for medical attention",
			zap.String("checkId", check.ID),
			zap.String("userId", check.UserID),
			zap.String("tier", string(check.Tier)))
	}
	return &models.SymptomCheckView{SymptomCheck: *check, Details: resolved}, nil
}

func (s *DefaultTriageService) History(ctx context.Context, actor models.Actor) ([]models.SymptomCheckView, error) {
	checks, err := s.Repo.ListChecksByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, c := range checks {
		ids = append(ids, symptomIDs(c.Symptoms)...)
	}
	symptoms, err := s.Repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Symptom, len(symptoms))
	for _, sym := range symptoms {
		byID[sym.ID] = sym
	}

	out := make([]models.SymptomCheckView, 0, len(checks))
	for _, c := range checks {
		out = append(out, models.SymptomCheckView{SymptomCheck: c, Details: detailsFor(c, byID)})
	}
	return out, nil
}

func (s *DefaultTriageService) GetCheck(ctx context.Context, id string, actor models.Actor) (*models.SymptomCheckView, error) {
	check, err := s.Repo.GetCheck(ctx, id)
	if err != nil {
		return nil, err
	}
	if check == nil {
		return nil, utils.NewAppError(utils.KindNotFound, "Symptom check not found")
	}
	if check.UserID != actor.ID && !actor.IsAdmin() {
		return nil, utils.ErrNotAuthorized
	}
	symptoms, err := s.Repo.GetByIDs(ctx, symptomIDs(check.Symptoms))
	if err != nil {
		return nil, err
	}
	return &models.SymptomCheckView{SymptomCheck: *check, Details: symptoms}, nil
}

// Seed loads the reference catalogue into an empty collection.
func (s *DefaultTriageService) Seed(ctx context.Context, actor models.Actor) (int, error) {
	if !actor.IsAdmin() {
		return 0, utils.ErrNotAuthorized
	}
	count, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, utils.ErrAlreadySeeded
	}
	symptoms := referenceSymptoms()
	if err := s.Repo.InsertMany(ctx, symptoms); err != nil {
		if errors.Is(err, symptomRepo.ErrDuplicateSymptom) {
			return 0, utils.ErrAlreadySeeded
		}
		return 0, err
	}
	utils.GetLogger().Info("Symptom catalogue seeded", zap.Int("count", len(symptoms)))
	return len(symptoms), nil
}

func symptomIDs(reported []models.ReportedSymptom) []string {
	ids := make([]string, 0, len(reported))
	for _, r := range reported {
		ids = append(ids, r.SymptomID)
	}
	return ids
}

func detailsFor(c models.SymptomCheck, byID map[string]models.Symptom) []models.Symptom {
	out := []models.Symptom{}
	seen := map[string]bool{}
	for _, r := range c.Symptoms {
		if sym, ok := byID[r.SymptomID]; ok && !seen[r.SymptomID] {
			seen[r.SymptomID] = true
			out = append(out, sym)
		}
	}
	return out
}
