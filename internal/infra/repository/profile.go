package repository

import (
	"context"

	"mentor-availability/internal/domain/session"
	"mentor-availability/internal/infra"
	"mentor-availability/internal/infra/db"
	"mentor-availability/internal/infra/repository/converter"
	"mentor-availability/internal/pkg/errs"
	"mentor-availability/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// ProfileRepository reads session defaults from mentor_profiles.
type ProfileRepository struct {
	runner TxRunner
}

func NewProfileRepository(runner TxRunner) *ProfileRepository {
	return &ProfileRepository{runner: runner}
}

func (r *ProfileRepository) Defaults(ctx context.Context, mentorID uuid.UUID) (session.Defaults, error) {
	var out session.Defaults
	err := r.runner.WithDB(ctx, func(ctx context.Context, q db.DBTX) error {
		var row converter.ProfileDefaultsRow
		err := q.QueryRow(ctx, getProfileDefaultsSQL, mentorID).Scan(
			&row.DefaultRate,
			&row.DefaultLocation,
			&row.LocationMapURL,
			&row.RegisteredPositionID,
		)
		if err != nil {
			if pgconv.IsNoRows(err) {
				return infra.WrapRepoErr("mentor profile not found", errs.Mark(err, errs.ErrProfileNotFound), infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to get session defaults", err)
		}
		out = converter.DefaultsFromRow(row)
		return nil
	})
	return out, err
}
