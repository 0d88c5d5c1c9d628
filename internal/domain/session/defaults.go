package session

import (
	"mentor-availability/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrMissingMentor   = errs.Mark(errs.New("mentor id is required"), errs.ErrDomainValidation)
	ErrMissingPosition = errs.Mark(errs.New("registered position is required to provision a session"), errs.ErrDomainValidation)
	ErrNegativeRate    = errs.Mark(errs.New("default rate cannot be negative"), errs.ErrDomainValidation)
)

// Defaults are the profile values a provisioned session starts from.
type Defaults struct {
	DefaultRate          *float64
	DefaultLocation      string
	LocationMapURL       string
	RegisteredPositionID uuid.UUID
}

func (d Defaults) Validate() error {
	if d.RegisteredPositionID == uuid.Nil {
		return ErrMissingPosition
	}
	if d.DefaultRate != nil && *d.DefaultRate < 0 {
		return ErrNegativeRate
	}
	return nil
}
