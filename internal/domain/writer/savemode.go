package writer

import "context"

// SaveMode tags how a validated payload hits storage. The mode is resolved
// exactly once per save instead of being re-inferred from payload shape.
type SaveMode int

const (
	ModeInsert SaveMode = iota
	ModeUpdateByID
	// ModeUpdateByResolvedEmail re-attaches a payload that carried no id but
	// whose email already belongs to an existing writer, so a resubmitted
	// form updates instead of duplicating.
	ModeUpdateByResolvedEmail
)

// Resolution is the resolved save mode plus the target id (zero for inserts
// until storage assigns one).
type Resolution struct {
	Mode SaveMode
	ID   uint
}

// EmailResolver is the slice of Repository mode resolution needs.
type EmailResolver interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindIDByEmail(ctx context.Context, email string) (uint, error)
}

// ResolveSaveMode decides insert-vs-update for a validated payload.
func ResolveSaveMode(ctx context.Context, repo EmailResolver, p Payload) (Resolution, error) {
	if p.ID != nil {
		return Resolution{Mode: ModeUpdateByID, ID: *p.ID}, nil
	}

	exists, err := repo.ExistsByEmail(ctx, p.Email)
	if err != nil {
		return Resolution{}, err
	}
	if !exists {
		return Resolution{Mode: ModeInsert}, nil
	}

	id, err := repo.FindIDByEmail(ctx, p.Email)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Mode: ModeUpdateByResolvedEmail, ID: id}, nil
}
