package httperr

import (
	"net/http"

	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps a failed result's error onto a response status.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, timeslot.ErrInvalidWindow), errs.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrTimeslotBooked):
		return http.StatusConflict
	case errs.Is(err, errs.ErrTimeslotNotFound), errs.Is(err, errs.ErrSessionNotFound), errs.Is(err, errs.ErrProfileNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrTransport), errs.Is(err, errs.ErrAuth):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithFailure renders an unsuccessful result. Validation failures carry
// the offending drafts as detail.
func AbortWithFailure(c *gin.Context, err error, msg string) {
	var detail any
	var verr *timeslot.ValidationError
	if errs.As(err, &verr) && len(verr.Issues) > 0 {
		issues := make([]string, len(verr.Issues))
		for i, issue := range verr.Issues {
			issues[i] = issue.String()
		}
		detail = gin.H{"drafts": issues}
	}
	AbortWithError(c, StatusFor(err), err, msg, detail)
}
