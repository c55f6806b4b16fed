package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"booking-core/internal/handler/httperr"
	"booking-core/internal/pkg/jwt"
	"booking-core/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxPartyIDKey = "party_id"
	ctxRoleKey    = "party_role"
)

var (
	errTokenRequired = errors.New("access token required")
	errRoleRequired  = errors.New("role not permitted")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenRequired, "Access token required", nil)
			return
		}

		partyID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxPartyIDKey, partyID)
		c.Set(ctxRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"party_id": partyID.String(),
			"role":     string(role),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role jwt.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := GetRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errRoleRequired, "Internal server error", nil)
			return
		}
		if got != role {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleRequired, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetPartyID(c *gin.Context) (uuid.UUID, bool) {
	partyID, exists := c.Get(ctxPartyIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := partyID.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (jwt.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(jwt.Role)
	return role, ok
}
