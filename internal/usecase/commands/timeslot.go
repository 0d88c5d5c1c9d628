package commands

import (
	"context"
	"log/slog"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/domain/timeslot"
	"mentor-availability/internal/pkg/clock"
	"mentor-availability/internal/pkg/config"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateResult struct {
	SessionID          uuid.UUID   `json:"session_id"`
	SessionProvisioned bool        `json:"session_provisioned"`
	TimeslotIDs        []uuid.UUID `json:"timeslot_ids"`
}

// TimeslotCommands is the write half of the timeslot façade. Expected failures are
// returned as unsuccessful results, never as panics or errors.
type TimeslotCommands interface {
	// EnsureSession returns sessionID when given, otherwise provisions a new session
	// from the mentor's profile defaults. Repeated nil calls provision repeatedly.
	EnsureSession(ctx context.Context, mentorID uuid.UUID, sessionID *uuid.UUID) shared.Result[uuid.UUID]
	CreateTimeslots(ctx context.Context, mentorID, sessionID uuid.UUID, drafts []timeslot.Draft) shared.Result[[]uuid.UUID]
	Create(ctx context.Context, mentorID uuid.UUID, sessionID *uuid.UUID, drafts []timeslot.Draft) shared.Result[CreateResult]
	Update(ctx context.Context, mentorID, timeslotID uuid.UUID, draft timeslot.Draft) shared.Result[uuid.UUID]
	Delete(ctx context.Context, mentorID, timeslotID uuid.UUID) shared.Result[uuid.UUID]
}

type timeslotCommandsImpl struct {
	store       shared.AvailabilityStore
	defaults    shared.DefaultsProvider
	clock       clock.Clock
	guardBooked bool
	logger      *slog.Logger
}

func NewTimeslotCommands(store shared.AvailabilityStore, defaults shared.DefaultsProvider, clk clock.Clock, cfg config.Config, logger *slog.Logger) TimeslotCommands {
	return &timeslotCommandsImpl{
		store:       store,
		defaults:    defaults,
		clock:       clk,
		guardBooked: cfg.Engine.GuardBookedMutations,
		logger:      logger,
	}
}

func (uc *timeslotCommandsImpl) EnsureSession(ctx context.Context, mentorID uuid.UUID, sessionID *uuid.UUID) shared.Result[uuid.UUID] {
	if sessionID != nil && *sessionID != uuid.Nil {
		return shared.Ok(*sessionID, "")
	}

	d, err := uc.defaults.Defaults(ctx, mentorID)
	if err != nil {
		return failWith(uc.logger, uuid.Nil, "load session defaults", mentorID, err)
	}
	s, err := session.Provision(mentorID, d, uc.clock)
	if err != nil {
		return failWith(uc.logger, uuid.Nil, "provision session", mentorID, err)
	}
	created, err := uc.store.CreateSession(ctx, s)
	if err != nil {
		return failWith(uc.logger, uuid.Nil, "create session", mentorID, err)
	}

	uc.logger.Info("session provisioned from profile defaults",
		"mentor_id", mentorID.String(),
		"session_id", created.ID().String())
	return shared.Ok(created.ID(), "session created from profile defaults")
}

func (uc *timeslotCommandsImpl) CreateTimeslots(ctx context.Context, mentorID, sessionID uuid.UUID, drafts []timeslot.Draft) shared.Result[[]uuid.UUID] {
	windows, err := timeslot.ValidateDrafts(drafts)
	if err != nil {
		return shared.Fail([]uuid.UUID{}, err)
	}
	ids, err := uc.store.CreateTimeslots(ctx, mentorID, sessionID, windows)
	if err != nil {
		return failWith(uc.logger, []uuid.UUID{}, "create timeslots", mentorID, err, "session_id", sessionID.String())
	}
	return shared.Ok(ids, "timeslots created")
}

// Create validates the whole batch before any store call, then runs the two steps.
// A failed attach after provisioning leaves the new session empty.
func (uc *timeslotCommandsImpl) Create(ctx context.Context, mentorID uuid.UUID, sessionID *uuid.UUID, drafts []timeslot.Draft) shared.Result[CreateResult] {
	if _, err := timeslot.ValidateDrafts(drafts); err != nil {
		return shared.Fail(CreateResult{TimeslotIDs: []uuid.UUID{}}, err)
	}

	ensured := uc.EnsureSession(ctx, mentorID, sessionID)
	if !ensured.Success {
		return shared.Result[CreateResult]{
			Data:    CreateResult{TimeslotIDs: []uuid.UUID{}},
			Message: ensured.Message,
			Err:     ensured.Err,
		}
	}
	provisioned := sessionID == nil || *sessionID == uuid.Nil

	created := uc.CreateTimeslots(ctx, mentorID, ensured.Data, drafts)
	result := shared.Result[CreateResult]{
		Success: created.Success,
		Data: CreateResult{
			SessionID:          ensured.Data,
			SessionProvisioned: provisioned,
			TimeslotIDs:        created.Data,
		},
		Message: created.Message,
		Err:     created.Err,
	}
	if !created.Success && provisioned {
		uc.logger.Warn("provisioned session left without timeslots",
			"mentor_id", mentorID.String(),
			"session_id", ensured.Data.String())
	}
	return result
}

func (uc *timeslotCommandsImpl) Update(ctx context.Context, mentorID, timeslotID uuid.UUID, draft timeslot.Draft) shared.Result[uuid.UUID] {
	windows, err := timeslot.ValidateDrafts([]timeslot.Draft{draft})
	if err != nil {
		return shared.Fail(uuid.Nil, err)
	}
	if err := uc.checkMutable(ctx, mentorID, timeslotID); err != nil {
		return failWith(uc.logger, uuid.Nil, "update timeslot", mentorID, err, "timeslot_id", timeslotID.String())
	}
	if err := uc.store.UpdateTimeslot(ctx, mentorID, timeslotID, windows[0]); err != nil {
		return failWith(uc.logger, uuid.Nil, "update timeslot", mentorID, err, "timeslot_id", timeslotID.String())
	}
	return shared.Ok(timeslotID, "timeslot updated")
}

func (uc *timeslotCommandsImpl) Delete(ctx context.Context, mentorID, timeslotID uuid.UUID) shared.Result[uuid.UUID] {
	if err := uc.checkMutable(ctx, mentorID, timeslotID); err != nil {
		return failWith(uc.logger, uuid.Nil, "delete timeslot", mentorID, err, "timeslot_id", timeslotID.String())
	}
	if err := uc.store.DeleteTimeslot(ctx, mentorID, timeslotID); err != nil {
		return failWith(uc.logger, uuid.Nil, "delete timeslot", mentorID, err, "timeslot_id", timeslotID.String())
	}
	return shared.Ok(timeslotID, "timeslot deleted")
}

// checkMutable re-reads the slot when the booked guard is on. The read and the write
// are separate calls, so a booking landing in between is not caught.
func (uc *timeslotCommandsImpl) checkMutable(ctx context.Context, mentorID, timeslotID uuid.UUID) error {
	if !uc.guardBooked {
		return nil
	}
	current, err := uc.store.GetTimeslot(ctx, mentorID, timeslotID)
	if err != nil {
		return err
	}
	if !timeslot.CanMutate(current.Timeslot.Status()) {
		return errs.ErrTimeslotBooked
	}
	return nil
}

// failWith logs the failed step and wraps err into an unsuccessful result.
func failWith[T any](logger *slog.Logger, empty T, op string, mentorID uuid.UUID, err error, attrs ...any) shared.Result[T] {
	args := append([]any{"mentor_id", mentorID.String(), "error", err.Error()}, attrs...)
	logger.Warn(op+" failed", args...)
	return shared.Fail(empty, err)
}
