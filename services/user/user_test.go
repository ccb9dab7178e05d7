package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userRepo "nurturebloom/database/repository/user"
	"nurturebloom/models"
	"nurturebloom/utils"
)

var _ userRepo.UserRepository = (*memUserRepo)(nil)

type memUserRepo struct {
	users map[string]models.User
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
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return userRepo.ErrDuplicateEmail
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) SetRole(_ context.Context, id string, role models.Role) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	u.Role = role
	r.users[id] = u
	return nil
}

type memRevocations struct {
	revoked map[string]time.Duration
}

func (m *memRevocations) Revoke(_ context.Context, hash string, ttl time.Duration) error {
	m.revoked[hash] = ttl
	return nil
}

func (m *memRevocations) IsRevoked(_ context.Context, hash string) (bool, error) {
	_, ok := m.revoked[hash]
	return ok, nil
}

func newTestService() (*DefaultUserService, *memUserRepo, *memRevocations) {
	repo := &memUserRepo{users: map[string]models.User{}}
	revocations := &memRevocations{revoked: map[string]time.Duration{}}
	svc := NewUserService(repo, utils.NewTokenService("test-secret", 120*time.Hour), revocations)
	return svc, repo, revocations
}

func register(t *testing.T, svc *DefaultUserService, email string) *AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), models.UserRegistration{
		FirstName: "Mary",
		LastName:  "Wambui",
		Email:     email,
		Password:  "secret123",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterCreatesPatient(t *testing.T) {
	svc, repo, _ := newTestService()

	resp := register(t, svc, " Mary@Example.com ")

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "mary@example.com", resp.User.Email)
	assert.Equal(t, models.RolePatient, resp.User.Role)
	stored := repo.users[resp.User.ID]
	assert.NotEqual(t, "secret123", stored.PasswordHash)

	actor, err := svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.Actor{ID: resp.User.ID, Role: models.RolePatient}, actor)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	register(t, svc, "mary@example.com")

	_, err := svc.Register(context.Background(), models.UserRegistration{
		FirstName: "M", LastName: "W", Email: "MARY@example.com", Password: "another1",
	})
	assert.ErrorIs(t, err, utils.ErrUserExists)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()
	register(t, svc, "mary@example.com")

	_, errWrongPassword := svc.Login(context.Background(), models.LoginRequest{Email: "mary@example.com", Password: "nope"})
	_, errUnknownEmail := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

	assert.ErrorIs(t, errWrongPassword, utils.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword, errUnknownEmail)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "mary@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, revocations := newTestService()
	resp := register(t, svc, "mary@example.com")

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	ttl := revocations.revoked[utils.HashToken(resp.Token)]
	assert.True(t, ttl > 119*time.Hour && ttl <= 120*time.Hour)

	_, err := svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)

	assert.NoError(t, svc.Logout(context.Background(), "garbage"))
}

func TestSetRoleRequiresAdmin(t *testing.T) {
	svc, _, _ := newTestService()
	target := register(t, svc, "pro@example.com").User

	_, err := svc.SetRole(context.Background(), target.Actor(), target.ID, models.RoleAdmin)
	assert.ErrorIs(t, err, utils.ErrNotAuthorized)

	admin := models.Actor{ID: "admin-1", Role: models.RoleAdmin}
	_, err = svc.SetRole(context.Background(), admin, target.ID, models.Role("root"))
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.SetRole(context.Background(), admin, "missing", models.RoleProfessional)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	updated, err := svc.SetRole(context.Background(), admin, target.ID, models.RoleProfessional)
	require.NoError(t, err)
	assert.Equal(t, models.RoleProfessional, updated.Role)

	pros, err := svc.ListProfessionals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.PublicProfile{updated.Public()}, pros)
}

func TestAuthenticateFollowsRoleChanges(t *testing.T) {
	svc, repo, _ := newTestService()
	resp := register(t, svc, "pro@example.com")
	admin := models.Actor{ID: "admin-1", Role: models.RoleAdmin}

	_, err := svc.SetRole(context.Background(), admin, resp.User.ID, models.RoleProfessional)
	require.NoError(t, err)
	actor, err := svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleProfessional, actor.Role)

	_, err = svc.SetRole(context.Background(), admin, resp.User.ID, models.RolePatient)
	require.NoError(t, err)
	actor, err = svc.Authenticate(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RolePatient, actor.Role)

	delete(repo.users, resp.User.ID)
	_, err = svc.Authenticate(context.Background(), resp.Token)
	assert.ErrorIs(t, err, utils.ErrInvalidToken)
}
