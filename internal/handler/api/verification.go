package api

import (
	"errors"
	"net/http"

	reqdto "booking-core/internal/handler/dto/request"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/httperr"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errTooManyAttempts = errors.New("verification attempts exhausted")

type VerificationHandler struct {
	cmds        commands.VerificationCommands
	q           queries.VerificationQueries
	maxAttempts int
}

func NewVerificationHandler(cmds commands.VerificationCommands, q queries.VerificationQueries, maxAttempts int) *VerificationHandler {
	return &VerificationHandler{cmds: cmds, q: q, maxAttempts: maxAttempts}
}

// @Summary Issue verification code
// @Description Issue the booking's code, or return the live one. The code value is shown to the provider only.
// @Tags verification
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.IssuedCodeResponse
// @Success 201 {object} resdto.IssuedCodeResponse
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/verification-code [post]
func (h *VerificationHandler) Issue(c *gin.Context) {
	partyID, ok := requireParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	issued, err := h.cmds.Issue(c.Request.Context(), id, partyID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	status := http.StatusOK
	if issued.Issued {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromIssuedCode(issued))
}

// @Summary Resend verification code
// @Tags verification
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.IssuedCodeResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/verification-code/resend [post]
func (h *VerificationHandler) Resend(c *gin.Context) {
	partyID, ok := requireParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	issued, err := h.cmds.Resend(c.Request.Context(), id, partyID)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromIssuedCode(issued))
}

// @Summary Verify code
// @Description Requester submits the code given by attending staff. Mismatches are counted.
// @Tags verification
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.VerifyCodeRequest true "Code"
// @Success 200 {object} resdto.VerificationResultResponse
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings/{id}/verification-code/verify [post]
func (h *VerificationHandler) Verify(c *gin.Context) {
	partyID, ok := requireParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if h.maxAttempts > 0 {
		status, err := h.q.GetStatus(c.Request.Context(), partyID, id)
		if err != nil {
			httperr.AbortWithDomainError(c, err, nil)
			return
		}
		if status.FailedAttempts >= h.maxAttempts {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errTooManyAttempts, "Too many failed attempts", resdto.FromVerificationStatusView(status))
			return
		}
	}

	result, err := h.cmds.Verify(c.Request.Context(), id, req.Code, partyID)
	if err != nil {
		var detail any
		if result != nil {
			detail = resdto.FromVerificationResult(result)
		}
		httperr.AbortWithDomainError(c, err, detail)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerificationResult(result))
}

// @Summary Verification status
// @Tags verification
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.VerificationStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/verification-code [get]
func (h *VerificationHandler) Status(c *gin.Context) {
	partyID, ok := requireParty(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	status, err := h.q.GetStatus(c.Request.Context(), partyID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVerificationStatusView(status))
}
