package writer

import (
	"context"
	"strconv"

	"github.com/easyscheduler/admin-backend/internal/audit"
	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
)

// ======================================================
// USE CASE — DELETE
// ======================================================

type DeleteWriter struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteWriter(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *DeleteWriter {
	return &DeleteWriter{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute hard-deletes a writer together with its settings row and provider
// associations. A non-numeric id is an InvalidArgumentError; an id that
// matches nothing returns false without error.
func (uc *DeleteWriter) Execute(ctx context.Context, rawID string) (bool, error) {
	parsed, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return false, &domain.InvalidArgumentError{
			Reason: "writer id must be numeric, got " + strconv.Quote(rawID),
		}
	}
	writerID := uint(parsed)

	var deleted bool
	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		var txErr error
		deleted, txErr = tx.DeleteUser(ctx, writerID)
		return txErr
	})
	if err != nil {
		return false, err
	}

	if deleted {
		uc.audit.Dispatch(audit.Event{
			Action:   "writer_deleted",
			Entity:   "writer",
			EntityID: &writerID,
		})
	}

	return deleted, nil
}
