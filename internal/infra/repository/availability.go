package repository

import (
	"context"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/infra"
	"mentor-availability/internal/infra/db"
	"mentor-availability/internal/infra/repository/converter"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/pkg/pgconv"
	"mentor-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

// TxRunner is implemented by uow.PostgresUoW.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error
}

// AvailabilityRepository is the Postgres-backed availability store.
type AvailabilityRepository struct {
	runner TxRunner
}

func NewAvailabilityRepository(runner TxRunner) *AvailabilityRepository {
	return &AvailabilityRepository{runner: runner}
}

func (r *AvailabilityRepository) ListTimeslots(ctx context.Context, mentorID uuid.UUID) ([]shared.AnnotatedTimeslot, error) {
	var out []shared.AnnotatedTimeslot
	err := r.runner.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		rows, err := queryTimeslots(ctx, q, listTimeslotsByMentorSQL, mentorID)
		if err != nil {
			return infra.WrapRepoErr("failed to list timeslots", err)
		}
		out = annotate(rows)
		return nil
	})
	return out, err
}

func (r *AvailabilityRepository) ListSessionTimeslots(ctx context.Context, mentorID, sessionID uuid.UUID) ([]shared.AnnotatedTimeslot, error) {
	var out []shared.AnnotatedTimeslot
	err := r.runner.WithinReadOnly(ctx, func(ctx context.Context, q db.DBTX) error {
		if err := ensureSessionOwned(ctx, q, mentorID, sessionID); err != nil {
			return err
		}
		rows, err := queryTimeslots(ctx, q, listTimeslotsBySessionSQL, mentorID, sessionID)
		if err != nil {
			return infra.WrapRepoErr("failed to list session timeslots", err)
		}
		out = annotate(rows)
		return nil
	})
	return out, err
}

// ListSessions reads sessions and their timeslots from one snapshot.
func (r *AvailabilityRepository) ListSessions(ctx context.Context, mentorID uuid.UUID) ([]shared.SessionTimeslots, error) {
	var out []shared.SessionTimeslots
	err := r.runner.WithinReadOnly(ctx, func(ctx context.Context, q db.DBTX) error {
		sessions, err := querySessions(ctx, q, mentorID)
		if err != nil {
			return infra.WrapRepoErr("failed to list sessions", err)
		}
		rows, err := queryTimeslots(ctx, q, listTimeslotsByMentorSQL, mentorID)
		if err != nil {
			return infra.WrapRepoErr("failed to list timeslots for sessions", err)
		}

		bySession := make(map[uuid.UUID][]*timeslot.Timeslot, len(sessions))
		for _, row := range rows {
			bySession[row.SessionID] = append(bySession[row.SessionID], converter.TimeslotFromRow(row))
		}
		out = make([]shared.SessionTimeslots, 0, len(sessions))
		for _, s := range sessions {
			out = append(out, shared.SessionTimeslots{Session: s, Timeslots: bySession[s.ID()]})
		}
		return nil
	})
	return out, err
}

func (r *AvailabilityRepository) GetTimeslot(ctx context.Context, mentorID, timeslotID uuid.UUID) (shared.AnnotatedTimeslot, error) {
	var out shared.AnnotatedTimeslot
	err := r.runner.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		var row converter.TimeslotRow
		if err := q.QueryRow(ctx, getTimeslotSQL, mentorID, timeslotID).Scan(row.ScanTargets()...); err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("timeslot not found", errs.Mark(err, errs.ErrTimeslotNotFound), infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to get timeslot", err)
		}
		out = converter.AnnotatedFromRow(row)
		return nil
	})
	return out, err
}

func (r *AvailabilityRepository) CreateSession(ctx context.Context, s *session.Session) (*session.Session, error) {
	err := r.runner.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		if _, err := q.Exec(ctx, insertSessionSQL, converter.SessionToInsertArgs(s)...); err != nil {
			return infra.WrapRepoErr("failed to create session", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateTimeslots inserts the whole batch in one transaction.
func (r *AvailabilityRepository) CreateTimeslots(ctx context.Context, mentorID, sessionID uuid.UUID, windows []timeslot.Window) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.runner.Within(ctx, func(ctx context.Context, q db.DBTX) error {
		ids = make([]uuid.UUID, 0, len(windows))
		if err := ensureSessionOwned(ctx, q, mentorID, sessionID); err != nil {
			return err
		}
		for _, w := range windows {
			var id uuid.UUID
			err := q.QueryRow(ctx, insertTimeslotSQL,
				sessionID,
				pgconv.TimeToPgtype(w.Start()),
				pgconv.TimeToPgtype(w.End()),
			).Scan(&id)
			if err != nil {
				return infra.WrapRepoErr("failed to create timeslot", err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UpdateTimeslot overwrites the window and clears the legacy columns. It does not check
// booked status; that policy belongs to the caller.
func (r *AvailabilityRepository) UpdateTimeslot(ctx context.Context, mentorID, timeslotID uuid.UUID, w timeslot.Window) error {
	return r.runner.Within(ctx, func(ctx context.Context, q db.DBTX) error {
		tag, err := q.Exec(ctx, updateTimeslotSQL,
			timeslotID,
			mentorID,
			pgconv.TimeToPgtype(w.Start()),
			pgconv.TimeToPgtype(w.End()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to update timeslot", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("timeslot not found", errs.ErrTimeslotNotFound, infra.KindNotFound)
		}
		return nil
	})
}

func (r *AvailabilityRepository) DeleteTimeslot(ctx context.Context, mentorID, timeslotID uuid.UUID) error {
	return r.runner.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		tag, err := q.Exec(ctx, deleteTimeslotSQL, timeslotID, mentorID)
		if err != nil {
			return infra.WrapRepoErr("failed to delete timeslot", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("timeslot not found", errs.ErrTimeslotNotFound, infra.KindNotFound)
		}
		return nil
	})
}

func ensureSessionOwned(ctx context.Context, q db.DBTX, mentorID, sessionID uuid.UUID) error {
	var owned bool
	if err := q.QueryRow(ctx, sessionOwnedSQL, sessionID, mentorID).Scan(&owned); err != nil {
		return infra.WrapRepoErr("failed to check session", err)
	}
	if !owned {
		return infra.WrapRepoErr("session not found", errs.ErrSessionNotFound, infra.KindNotFound)
	}
	return nil
}

func queryTimeslots(ctx context.Context, q db.DBTX, sql string, args ...any) ([]converter.TimeslotRow, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []converter.TimeslotRow
	for rows.Next() {
		var row converter.TimeslotRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func querySessions(ctx context.Context, q db.DBTX, mentorID uuid.UUID) ([]*session.Session, error) {
	rows, err := q.Query(ctx, listSessionsSQL, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*session.Session
	for rows.Next() {
		var row converter.SessionRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, err
		}
		out = append(out, converter.SessionFromRow(row))
	}
	return out, rows.Err()
}

func annotate(rows []converter.TimeslotRow) []shared.AnnotatedTimeslot {
	out := make([]shared.AnnotatedTimeslot, len(rows))
	for i, row := range rows {
		out[i] = converter.AnnotatedFromRow(row)
	}
	return out
}
