package errs

// Sentinels shared by the usecase and handler layers. Match with errors.Is.
var (
	ErrTimeslotNotFound = New("timeslot not found")
	ErrSessionNotFound  = New("session not found")
	ErrProfileNotFound  = New("mentor profile not found")

	// write guard
	ErrTimeslotBooked = New("timeslot is booked")

	// upstream failures
	ErrTransport = New("store request failed")
	ErrAuth      = New("store rejected credentials")

	ErrDomainValidation = New("domain validation failed")
)
