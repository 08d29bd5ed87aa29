package writer

import (
	"context"
	"errors"

	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
	"github.com/easyscheduler/admin-backend/internal/models"
)

// ======================================================
// USE CASES — READS
// ======================================================

type GetWriter struct {
	repo domain.Repository
}

func NewGetWriter(repo domain.Repository) *GetWriter {
	return &GetWriter{repo: repo}
}

// Execute returns the denormalized writer: core fields, provider id set and
// public settings. Salt and password digest are stripped.
func (uc *GetWriter) Execute(ctx context.Context, writerID uint) (*domain.Record, error) {
	user, err := uc.repo.GetUser(ctx, writerID)
	if err != nil {
		return nil, err
	}

	record, err := uc.denormalize(ctx, user)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *GetWriter) denormalize(ctx context.Context, user *models.User) (*domain.Record, error) {
	providers, err := uc.repo.ProviderIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	record := &domain.Record{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		PhoneNumber:  user.PhoneNumber,
		Address:      user.Address,
		City:         user.City,
		State:        user.State,
		ZipCode:      user.ZipCode,
		Notes:        user.Notes,
		Providers:    providers,
	}

	settings, err := uc.repo.GetSettings(ctx, user.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return record, nil
	}
	if err != nil {
		return nil, err
	}

	record.Settings = domain.Settings{
		Username:      settings.Username,
		Notifications: settings.Notifications,
	}
	return record, nil
}

type ListWriters struct {
	repo domain.Repository
}

func NewListWriters(repo domain.Repository) *ListWriters {
	return &ListWriters{repo: repo}
}

// Execute returns every writer-role user matching the filter, each
// denormalized the same way as a single-record read.
func (uc *ListWriters) Execute(ctx context.Context, filter domain.ListFilter) ([]domain.Record, error) {
	users, err := uc.repo.ListUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	get := &GetWriter{repo: uc.repo}

	records := make([]domain.Record, 0, len(users))
	for i := range users {
		record, err := get.denormalize(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, nil
}
