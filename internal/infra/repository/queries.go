package repository

// Hand-written statements against migrations/001_initial_schema.sql.

const timeslotColumns = `
	t.id, t.session_id,
	t.start_time, t.end_time, t.start_date, t.end_date,
	t.is_booked, t.booking_id, b.id,
	s.location_name, s.price`

// The lateral join surfaces the nested booking signal: the latest non-cancelled booking.
const timeslotFrom = `
	FROM timeslots t
	JOIN sessions s ON s.id = t.session_id
	LEFT JOIN LATERAL (
		SELECT bk.id FROM bookings bk
		WHERE bk.timeslot_id = t.id AND bk.status <> 'cancelled'
		ORDER BY bk.created_at DESC
		LIMIT 1
	) b ON TRUE`

const (
	listTimeslotsByMentorSQL = `SELECT` + timeslotColumns + timeslotFrom + `
	WHERE s.mentor_id = $1
	ORDER BY t.created_at, t.id`

	listTimeslotsBySessionSQL = `SELECT` + timeslotColumns + timeslotFrom + `
	WHERE s.mentor_id = $1 AND t.session_id = $2
	ORDER BY t.created_at, t.id`

	getTimeslotSQL = `SELECT` + timeslotColumns + timeslotFrom + `
	WHERE s.mentor_id = $1 AND t.id = $2`

	listSessionsSQL = `
	SELECT id, mentor_id, position_id, price, location_name, location_map_url, agenda_document_ref, created_at
	FROM sessions
	WHERE mentor_id = $1
	ORDER BY created_at, id`

	sessionOwnedSQL = `SELECT EXISTS (SELECT 1 FROM sessions WHERE id = $1 AND mentor_id = $2)`

	insertSessionSQL = `
	INSERT INTO sessions (id, mentor_id, position_id, price, location_name, location_map_url, agenda_document_ref, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	insertTimeslotSQL = `
	INSERT INTO timeslots (session_id, start_time, end_time)
	VALUES ($1, $2, $3)
	RETURNING id`

	updateTimeslotSQL = `
	UPDATE timeslots t
	SET start_time = $3, end_time = $4, start_date = NULL, end_date = NULL, updated_at = now()
	FROM sessions s
	WHERE t.id = $1 AND t.session_id = s.id AND s.mentor_id = $2`

	deleteTimeslotSQL = `
	DELETE FROM timeslots t
	USING sessions s
	WHERE t.id = $1 AND t.session_id = s.id AND s.mentor_id = $2`

	getProfileDefaultsSQL = `
	SELECT default_rate, default_location, location_map_url, registered_position_id
	FROM mentor_profiles
	WHERE mentor_id = $1`
)
