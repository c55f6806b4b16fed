package api

import (
	"errors"
	"net/http"

	"booking-core/internal/handler/httperr"
	"booking-core/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingParty = errors.New("authenticated party missing from context")

func requireParty(c *gin.Context) (uuid.UUID, bool) {
	partyID, ok := middleware.GetPartyID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingParty, "Unauthorized", nil)
		return uuid.Nil, false
	}
	return partyID, true
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name+" format", nil)
		return uuid.Nil, false
	}
	return id, true
}
