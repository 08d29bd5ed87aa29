package writer

import (
	"context"

	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
)

// ======================================================
// USE CASES — DIRECT SETTING ACCESS
// ======================================================

// WriterSettings reads and writes single named settings columns, bypassing
// full payload validation. Callers must know the record exists.
type WriterSettings struct {
	repo domain.Repository
}

func NewWriterSettings(repo domain.Repository) *WriterSettings {
	return &WriterSettings{repo: repo}
}

// publicSettings are the columns reachable through this use case. Salt and
// the password digest stay repository-internal; password changes go through
// the save flow so the plaintext is hashed before storage.
var publicSettings = map[string]bool{
	"username":      true,
	"notifications": true,
}

func (uc *WriterSettings) Get(ctx context.Context, name string, writerID uint) (string, error) {
	if !publicSettings[name] {
		return "", &domain.InvalidArgumentError{Reason: "setting is not accessible: " + name}
	}
	return uc.repo.GetSettingValue(ctx, name, writerID)
}

func (uc *WriterSettings) Set(ctx context.Context, name string, value any, writerID uint) error {
	if !publicSettings[name] {
		return &domain.InvalidArgumentError{Reason: "setting is not accessible: " + name}
	}
	return uc.repo.SetSettingValue(ctx, name, value, writerID)
}
