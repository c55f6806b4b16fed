package httperr

import (
	"net/http"

	"booking-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, msg, "", detail)
}

func abort(c *gin.Context, status int, err error, msg, code string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Error.Code = code
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type category struct {
	err    error
	status int
	code   string
}

// Order matters only for errors carrying more than one mark.
var categories = []category{
	{errs.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{errs.ErrValidation, http.StatusBadRequest, "VALIDATION"},
	{errs.ErrCapacity, http.StatusUnprocessableEntity, "CAPACITY_EXCEEDED"},
	{errs.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
	{errs.ErrWindowClosed, http.StatusConflict, "WINDOW_CLOSED"},
	{errs.ErrAlreadyVerified, http.StatusConflict, "ALREADY_VERIFIED"},
	{errs.ErrOverlap, http.StatusConflict, "OVERLAP"},
	{errs.ErrCodeMismatch, http.StatusUnprocessableEntity, "CODE_MISMATCH"},
}

// AbortWithDomainError renders err by its category. Uncategorized errors
// become a 500 without leaking their message.
func AbortWithDomainError(c *gin.Context, err error, detail any) {
	for _, cat := range categories {
		if errs.Is(err, cat.err) {
			abort(c, cat.status, err, rootMessage(err), cat.code, detail)
			return
		}
	}
	abort(c, http.StatusInternalServerError, err, "Internal server error", "", nil)
}

// rootMessage drops wrap prefixes so clients see the sentinel's own text.
func rootMessage(err error) string {
	return errs.Cause(err).Error()
}
