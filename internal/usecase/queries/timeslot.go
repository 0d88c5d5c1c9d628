package queries

import (
	"context"
	"log/slog"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

// TimeslotQueries is the read half of the timeslot façade. Failures come back as
// unsuccessful results carrying an empty, non-nil list.
type TimeslotQueries interface {
	ListAll(ctx context.Context, mentorID uuid.UUID) shared.Result[[]DisplayTimeslot]
	ListForSession(ctx context.Context, mentorID, sessionID uuid.UUID) shared.Result[[]DisplayTimeslot]
	Get(ctx context.Context, mentorID, timeslotID uuid.UUID) shared.Result[*DisplayTimeslot]
	Sessions(ctx context.Context, mentorID uuid.UUID) shared.Result[[]SessionView]
	Availability(ctx context.Context, mentorID uuid.UUID, view View, key SortKey) shared.Result[[]DisplayTimeslot]
	RecentlyAdded(ctx context.Context, mentorID uuid.UUID, limit int) shared.Result[[]DisplayTimeslot]
	SessionDefaults(ctx context.Context, mentorID uuid.UUID) shared.Result[session.Defaults]
}

type timeslotQueriesImpl struct {
	store     shared.AvailabilityStore
	defaults  shared.DefaultsProvider
	formatter *Formatter
	logger    *slog.Logger
}

func NewTimeslotQueries(store shared.AvailabilityStore, defaults shared.DefaultsProvider, formatter *Formatter, logger *slog.Logger) TimeslotQueries {
	return &timeslotQueriesImpl{
		store:     store,
		defaults:  defaults,
		formatter: formatter,
		logger:    logger,
	}
}

func (q *timeslotQueriesImpl) ListAll(ctx context.Context, mentorID uuid.UUID) shared.Result[[]DisplayTimeslot] {
	items, err := q.store.ListTimeslots(ctx, mentorID)
	if err != nil {
		return q.failList("list timeslots", mentorID, err)
	}
	list := q.formatter.FormatAll(items)
	SortBy(list, SortByDate)
	return shared.Ok(list, "")
}

func (q *timeslotQueriesImpl) ListForSession(ctx context.Context, mentorID, sessionID uuid.UUID) shared.Result[[]DisplayTimeslot] {
	items, err := q.store.ListSessionTimeslots(ctx, mentorID, sessionID)
	if err != nil {
		return q.failList("list session timeslots", mentorID, err, "session_id", sessionID.String())
	}
	list := q.formatter.FormatAll(items)
	SortBy(list, SortByDate)
	return shared.Ok(list, "")
}

func (q *timeslotQueriesImpl) Get(ctx context.Context, mentorID, timeslotID uuid.UUID) shared.Result[*DisplayTimeslot] {
	item, err := q.store.GetTimeslot(ctx, mentorID, timeslotID)
	if err != nil {
		q.logger.Warn("get timeslot failed", "mentor_id", mentorID.String(), "timeslot_id", timeslotID.String(), "error", err.Error())
		return shared.Fail[*DisplayTimeslot](nil, err)
	}
	view := q.formatter.Format(item.Timeslot, item.Owner)
	return shared.Ok(&view, "")
}

func (q *timeslotQueriesImpl) Sessions(ctx context.Context, mentorID uuid.UUID) shared.Result[[]SessionView] {
	sessions, err := q.store.ListSessions(ctx, mentorID)
	if err != nil {
		q.logger.Warn("list sessions failed", "mentor_id", mentorID.String(), "error", err.Error())
		return shared.Fail([]SessionView{}, err)
	}

	out := make([]SessionView, 0, len(sessions))
	for _, st := range sessions {
		if st.Session == nil {
			continue
		}
		s := st.Session
		slots := make([]DisplayTimeslot, 0, len(st.Timeslots))
		for _, ts := range st.Timeslots {
			slots = append(slots, q.formatter.Format(ts, s.Summary()))
		}
		SortBy(slots, SortByDate)
		out = append(out, SessionView{
			ID:                s.ID(),
			PositionID:        s.PositionID(),
			Price:             s.Price(),
			LocationName:      s.LocationName(),
			LocationMapURL:    s.LocationMapURL(),
			AgendaDocumentRef: s.AgendaDocumentRef(),
			CreatedAt:         s.CreatedAt(),
			Timeslots:         slots,
		})
	}
	return shared.Ok(out, "")
}

func (q *timeslotQueriesImpl) Availability(ctx context.Context, mentorID uuid.UUID, view View, key SortKey) shared.Result[[]DisplayTimeslot] {
	sessions, err := q.store.ListSessions(ctx, mentorID)
	if err != nil {
		return q.failList("aggregate availability", mentorID, err, "view", string(view))
	}
	return shared.Ok(q.formatter.Aggregate(sessions, view, key), "")
}

func (q *timeslotQueriesImpl) RecentlyAdded(ctx context.Context, mentorID uuid.UUID, limit int) shared.Result[[]DisplayTimeslot] {
	items, err := q.store.ListTimeslots(ctx, mentorID)
	if err != nil {
		return q.failList("list recent timeslots", mentorID, err)
	}
	list := q.formatter.FormatAll(items)
	SortNewestFirst(list)
	return shared.Ok(Take(list, limit), "")
}

func (q *timeslotQueriesImpl) SessionDefaults(ctx context.Context, mentorID uuid.UUID) shared.Result[session.Defaults] {
	d, err := q.defaults.Defaults(ctx, mentorID)
	if err != nil {
		q.logger.Warn("load session defaults failed", "mentor_id", mentorID.String(), "error", err.Error())
		return shared.Fail(session.Defaults{}, err)
	}
	return shared.Ok(d, "")
}

func (q *timeslotQueriesImpl) failList(op string, mentorID uuid.UUID, err error, attrs ...any) shared.Result[[]DisplayTimeslot] {
	args := append([]any{"mentor_id", mentorID.String(), "error", err.Error()}, attrs...)
	q.logger.Warn(op+" failed", args...)
	return shared.Fail([]DisplayTimeslot{}, err)
}
