//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"booking-core/internal/pkg/config"
	"booking-core/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, partyID uuid.UUID, role jwt.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, h.cfg.TokenDuration)
	token, err := service.GenerateToken(partyID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) RequesterToken(t *testing.T, partyID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, partyID, jwt.RoleRequester)
}

func (h *JWTHelper) ProviderToken(t *testing.T, partyID uuid.UUID) string {
	t.Helper()
	return h.GenerateToken(t, partyID, jwt.RoleProvider)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, partyID uuid.UUID, role jwt.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, time.Millisecond)
	token, err := service.GenerateToken(partyID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
