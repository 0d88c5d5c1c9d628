//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool or a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateMentorProfile stores session defaults for a new mentor and returns the mentor id.
func CreateMentorProfile(t *testing.T, db DBLike, rate *float64, location, mapURL string, positionID *uuid.UUID) uuid.UUID {
	t.Helper()

	mentorID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO mentor_profiles (mentor_id, default_rate, default_location, location_map_url, registered_position_id)
		 VALUES ($1, $2, $3, $4, $5)`,
		mentorID, rate, location, mapURL, positionID)
	require.NoError(t, err)

	return mentorID
}

func CreateSession(t *testing.T, db DBLike, mentorID uuid.UUID, locationName string, price *float64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO sessions (mentor_id, position_id, price, location_name)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		mentorID, uuid.New(), price, locationName).Scan(&id)
	require.NoError(t, err)

	return id
}

func CreateTimeslot(t *testing.T, db DBLike, sessionID uuid.UUID, start, end time.Time) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO timeslots (session_id, start_time, end_time) VALUES ($1, $2, $3) RETURNING id`,
		sessionID, start, end).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateLegacyTimeslot writes only the text start_date/end_date columns, as imported rows have.
func CreateLegacyTimeslot(t *testing.T, db DBLike, sessionID uuid.UUID, startDate, endDate string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO timeslots (session_id, start_date, end_date) VALUES ($1, $2, $3) RETURNING id`,
		sessionID, startDate, endDate).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateBooking attaches a booking record without touching the timeslot flags.
func CreateBooking(t *testing.T, db DBLike, timeslotID uuid.UUID) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO bookings (timeslot_id, mentee_id) VALUES ($1, $2) RETURNING id`,
		timeslotID, uuid.New()).Scan(&id)
	require.NoError(t, err)

	return id
}

func MarkBooked(t *testing.T, db DBLike, timeslotID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), `UPDATE timeslots SET is_booked = true WHERE id = $1`, timeslotID)
	require.NoError(t, err)
}

func CountTimeslots(t *testing.T, db DBLike, sessionID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM timeslots WHERE session_id = $1`, sessionID).Scan(&n)
	require.NoError(t, err)

	return n
}

func CountSessions(t *testing.T, db DBLike, mentorID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM sessions WHERE mentor_id = $1`, mentorID).Scan(&n)
	require.NoError(t, err)

	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
