package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nurturebloom/models"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	actor := models.Actor{ID: "user-1", Role: models.RoleProfessional}

	token, exp, err := svc.GenerateToken(actor)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, actor, claims.Actor())
}

func TestTokenService_RejectsForeignSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, _, err := issuer.GenerateToken(models.Actor{ID: "u", Role: models.RolePatient})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsExpired(t *testing.T) {
	svc := NewTokenService("secret", time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := svc.GenerateToken(models.Actor{ID: "u", Role: models.RolePatient})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenService_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { NewTokenService("", time.Hour) })
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 403, HTTPStatus(ErrNotAuthorized))
	assert.Equal(t, 404, HTTPStatus(NewAppError(KindNotFound, "Webinar not found")))
	assert.Equal(t, 400, HTTPStatus(ErrSlotUnavailable))
	assert.Equal(t, 409, HTTPStatus(ErrUserExists))
	assert.Equal(t, 500, HTTPStatus(assert.AnError))
}

func TestAppError_IsMatchesByKind(t *testing.T) {
	err := NewAppError(KindNotFound, "Consultation not found")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrNotAuthorized)
}
