package triage

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	symptomRepo "nurturebloom/database/repository/symptom"
	"nurturebloom/models"
	"nurturebloom/utils"
)

var _ symptomRepo.SymptomRepository = (*memSymptomRepo)(nil)

type memSymptomRepo struct {
	symptoms []models.Symptom
	checks   []models.SymptomCheck
}

func (r *memSymptomRepo) Count(context.Context) (int64, error) {
	return int64(len(r.symptoms)), nil
}

func (r *memSymptomRepo) InsertMany(_ context.Context, symptoms []models.Symptom) error {
	r.symptoms = append(r.symptoms, symptoms...)
	return nil
}

func (r *memSymptomRepo) sorted(match func(models.Symptom) bool) []models.Symptom {
	out := []models.Symptom{}
	for _, s := range r.symptoms {
		if match(s) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *memSymptomRepo) ListAll(context.Context) ([]models.Symptom, error) {
	return r.sorted(func(models.Symptom) bool { return true }), nil
}

func (r *memSymptomRepo) ListByCategory(_ context.Context, category models.SymptomCategory) ([]models.Symptom, error) {
	return r.sorted(func(s models.Symptom) bool { return s.Category == category }), nil
}

func (r *memSymptomRepo) GetByIDs(_ context.Context, ids []string) ([]models.Symptom, error) {
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	return r.sorted(func(s models.Symptom) bool { return want[s.ID] }), nil
}

func (r *memSymptomRepo) CreateCheck(_ context.Context, c *models.SymptomCheck) error {
	r.checks = append(r.checks, *c)
	return nil
}

func (r *memSymptomRepo) GetCheck(_ context.Context, id string) (*models.SymptomCheck, error) {
	for _, c := range r.checks {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memSymptomRepo) ListChecksByUser(_ context.Context, userID string) ([]models.SymptomCheck, error) {
	out := []models.SymptomCheck{}
	for i := len(r.checks) - 1; i >= 0; i-- {
		if r.checks[i].UserID == userID {
			out = append(out, r.checks[i])
		}
	}
	return out, nil
}

var (
	adminActor   = models.Actor{ID: "admin", Role: models.RoleAdmin}
	patientActor = models.Actor{ID: "patient", Role: models.RolePatient}
)

func seededService(t *testing.T) (*DefaultTriageService, map[string]models.Symptom) {
	t.Helper()
	repo := &memSymptomRepo{}
	svc := NewTriageService(repo)
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

	n, err := svc.Seed(context.Background(), adminActor)
	require.NoError(t, err)
	require.Equal(t, 10, n)

	byName := map[string]models.Symptom{}
	for _, s := range repo.symptoms {
		byName[s.Name] = s
	}
	return svc, byName
}

func report(symptoms ...models.Symptom) models.SymptomCheckInput {
	in := models.SymptomCheckInput{}
	for _, s := range symptoms {
		in.Symptoms = append(in.Symptoms, models.ReportedSymptom{SymptomID: s.ID, SelfSeverity: 5})
	}
	return in
}

func TestMaxTier(t *testing.T) {
	tests := []struct {
		name  string
		tiers []models.Severity
		want  models.Severity
	}{
		{"single mild", []models.Severity{models.SeverityMild}, models.SeverityMild},
		{"moderate beats mild", []models.Severity{models.SeverityMild, models.SeverityModerate}, models.SeverityModerate},
		{"severe beats moderate", []models.Severity{models.SeverityModerate, models.SeveritySevere, models.SeverityMild}, models.SeveritySevere},
		{"emergency wins", []models.Severity{models.SeveritySevere, models.SeverityEmergency, models.SeverityModerate}, models.SeverityEmergency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var symptoms []models.Symptom
			for _, tier := range tt.tiers {
				symptoms = append(symptoms, models.Symptom{Severity: tier})
			}
			assert.Equal(t, tt.want, MaxTier(symptoms))
		})
	}
}

func TestPolicyTable(t *testing.T) {
	assert.True(t, PolicyFor(models.SeverityEmergency).SeekMedicalAttention)
	assert.True(t, PolicyFor(models.SeveritySevere).SeekMedicalAttention)
	assert.False(t, PolicyFor(models.SeverityModerate).SeekMedicalAttention)
	assert.False(t, PolicyFor(models.SeverityMild).SeekMedicalAttention)
	assert.Contains(t, PolicyFor(models.SeverityMild).Recommendation, "2 weeks")

	_, ok := Assess(nil)
	assert.False(t, ok)
}

func TestCheckUsesMostUrgentTier(t *testing.T) {
	svc, catalogue := seededService(t)

	v, err := svc.Check(context.Background(), patientActor, report(
		catalogue["Baby Blues"],
		catalogue["Severe Headache"],
		catalogue["Breast Engorgement"],
	))
	require.NoError(t, err)
	assert.Equal(t, models.SeveritySevere, v.Tier)
	assert.True(t, v.SeekMedicalAttention)
	assert.Equal(t, PolicyFor(models.SeveritySevere).Assessment, v.Assessment)
	assert.Len(t, v.Details, 3)
	assert.Equal(t, patientActor.ID, v.UserID)
}

func TestCheckIgnoresSelfReportedScore(t *testing.T) {
	svc, catalogue := seededService(t)

	in := report(catalogue["Postpartum Bleeding (Normal)"])
	in.Symptoms[0].SelfSeverity = 10
	v, err := svc.Check(context.Background(), patientActor, in)
	require.NoError(t, err)
	assert.Equal(t, models.SeverityMild, v.Tier)
	assert.False(t, v.SeekMedicalAttention)
}

func TestCheckSkipsUnknownReferences(t *testing.T) {
	svc, catalogue := seededService(t)

	in := report(catalogue["Postpartum Bleeding (Heavy)"])
	in.Symptoms = append(in.Symptoms, models.ReportedSymptom{SymptomID: "does-not-exist", SelfSeverity: 3})
	v, err := svc.Check(context.Background(), patientActor, in)
	require.NoError(t, err)
	assert.Equal(t, models.SeverityEmergency, v.Tier)
	assert.Len(t, v.Details, 1)

	_, err = svc.Check(context.Background(), patientActor, models.SymptomCheckInput{
		Symptoms: []models.ReportedSymptom{{SymptomID: "nope", SelfSeverity: 3}},
	})
	assert.ErrorIs(t, err, utils.ErrNoValidSymptoms)

	_, err = svc.Check(context.Background(), patientActor, models.SymptomCheckInput{})
	assert.ErrorIs(t, err, utils.ErrNoValidSymptoms)
}

func TestCheckDefaultsDuration(t *testing.T) {
	svc, catalogue := seededService(t)

	v, err := svc.Check(context.Background(), patientActor, report(catalogue["Mastitis"]))
	require.NoError(t, err)
	assert.Equal(t, utils.DefaultDurationText, v.Symptoms[0].Duration)
}

func TestHistoryAndGetCheck(t *testing.T) {
	svc, catalogue := seededService(t)
	ctx := context.Background()

	first, err := svc.Check(ctx, patientActor, report(catalogue["Baby Blues"]))
	require.NoError(t, err)
	second, err := svc.Check(ctx, patientActor, report(catalogue["Mastitis"]))
	require.NoError(t, err)

	history, err := svc.History(ctx, patientActor)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, "Mastitis", history[0].Details[0].Name)

	_, err = svc.GetCheck(ctx, first.ID, models.Actor{ID: "someone-else", Role: models.RolePatient})
	assert.ErrorIs(t, err, utils.ErrNotAuthorized)

	got, err := svc.GetCheck(ctx, first.ID, adminActor)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = svc.GetCheck(ctx, "missing", adminActor)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestSeedRules(t *testing.T) {
	svc, _ := seededService(t)
	repo := svc.Repo.(*memSymptomRepo)
	before := append([]models.Symptom(nil), repo.symptoms...)

	n, err := svc.Seed(context.Background(), adminActor)
	assert.ErrorIs(t, err, utils.ErrAlreadySeeded)
	assert.Zero(t, n)
	assert.Len(t, repo.symptoms, 10)
	assert.Equal(t, before, repo.symptoms)

	freshRepo := &memSymptomRepo{}
	fresh := NewTriageService(freshRepo)
	_, err = fresh.Seed(context.Background(), patientActor)
	assert.ErrorIs(t, err, utils.ErrNotAuthorized)
	assert.Empty(t, freshRepo.symptoms)
}

func TestListByCategory(t *testing.T) {
	svc, _ := seededService(t)

	list, err := svc.ListByCategory(context.Background(), models.CategoryEmotional)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Baby Blues", list[0].Name)

	_, err = svc.ListByCategory(context.Background(), models.SymptomCategory("spiritual"))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
