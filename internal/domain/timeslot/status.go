package timeslot

import (
	"strings"

	"mentor-availability/internal/pkg/patch"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusBooked    Status = "BOOKED"
)

func (s Status) String() string {
	return string(s)
}

// BookingRef is an opaque booking reference. Stores key bookings by UUID, by
// number or by prefixed text, so only its presence carries meaning here.
type BookingRef string

// NewBookingRef trims s and returns nil when nothing is left.
func NewBookingRef(s string) *BookingRef {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	r := BookingRef(s)
	return &r
}

// BookingRefFromUUID treats a nil or zero id as absent.
func BookingRefFromUUID(id *uuid.UUID) *BookingRef {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return NewBookingRef(id.String())
}

func (r BookingRef) String() string {
	return string(r)
}

func (r *BookingRef) present() bool {
	return r != nil && strings.TrimSpace(string(*r)) != ""
}

// Booking is a nested booking record as some payloads embed it.
type Booking struct {
	ID *BookingRef
}

// Signals are the booking indicators a payload may carry, any subset of which may be set.
type Signals struct {
	IsBooked   *bool
	BookingRef *BookingRef
	Booking    *Booking
}

// Classify is the only place booked status is decided. Any one signal is enough.
func Classify(s Signals) Status {
	if patch.Coalesce(s.IsBooked, false) {
		return StatusBooked
	}
	if s.EffectiveBookingRef() != nil {
		return StatusBooked
	}
	return StatusAvailable
}

// EffectiveBookingRef returns the booking reference from whichever signal carries one.
func (s Signals) EffectiveBookingRef() *BookingRef {
	if s.BookingRef.present() {
		return NewBookingRef(string(*s.BookingRef))
	}
	if s.Booking != nil && s.Booking.ID.present() {
		return NewBookingRef(string(*s.Booking.ID))
	}
	return nil
}

// CanMutate reports whether a slot in this status may be edited or deleted.
func CanMutate(s Status) bool {
	return s == StatusAvailable
}
