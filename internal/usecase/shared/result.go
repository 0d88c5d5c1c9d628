package shared

import (
	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/infra"
	"mentor-availability/internal/pkg/errs"
)

// Result is the uniform outcome of every façade operation. Expected failures are
// reported here instead of as a returned error.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func Ok[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

// Fail keeps empty as Data so callers can still render a list.
func Fail[T any](empty T, err error) Result[T] {
	cause, message := classify(err)
	return Result[T]{Success: false, Data: empty, Message: message, Err: cause}
}

// classify maps store and domain errors onto the failure taxonomy. The returned
// error still wraps the original.
func classify(err error) (error, string) {
	var verr *timeslot.ValidationError
	switch {
	case errs.Is(err, timeslot.ErrInvalidWindow):
		if errs.As(err, &verr) {
			return err, verr.Error()
		}
		return errs.Mark(err, errs.ErrDomainValidation), err.Error()
	case errs.Is(err, errs.ErrDomainValidation):
		return err, errs.Cause(err).Error()
	case errs.Is(err, errs.ErrTimeslotBooked):
		return err, "timeslot is booked and cannot be changed"
	case errs.Is(err, errs.ErrSessionNotFound):
		return err, "session not found"
	case errs.Is(err, errs.ErrProfileNotFound):
		return err, "mentor profile not found"
	case errs.Is(err, errs.ErrTimeslotNotFound), infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrTimeslotNotFound), "timeslot not found"
	case infra.IsKind(err, infra.KindAuth):
		return errs.Mark(err, errs.ErrAuth), "store rejected the mentor credentials"
	case infra.IsKind(err, infra.KindForeignKeyViolated), infra.IsKind(err, infra.KindDuplicateKey), infra.IsKind(err, infra.KindConstraintViolated):
		return errs.Mark(err, errs.ErrDomainValidation), "request conflicts with stored data"
	default:
		return errs.Mark(err, errs.ErrTransport), "could not reach the availability store, please retry"
	}
}
