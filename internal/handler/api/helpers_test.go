//go:build unit

package api_test

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errDatabaseDown = errors.New("dial tcp 127.0.0.1:5432: connection refused")

// fakeAuth stands in for the JWT middleware and authenticates as *partyID.
func fakeAuth(partyID *uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("party_id", *partyID)
		c.Next()
	}
}
