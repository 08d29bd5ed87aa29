package writer

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
)

func TestDeleteWriter(t *testing.T) {
	repo := newFakeRepo()
	saveUC := newSaveUC(repo)
	deleteUC := NewDeleteWriter(repo, nil)

	id, err := saveUC.Execute(context.Background(), domain.Payload{
		LastName:    "Doe",
		Email:       "d@x.com",
		PhoneNumber: "123",
		Providers:   []uint{1, 2},
		Settings:    &domain.SettingsInput{Username: "ddoe"},
	})
	require.NoError(t, err)

	// Test case 1: non-numeric id is an InvalidArgument, not a lookup.
	_, err = deleteUC.Execute(context.Background(), "abc")
	var invalidArgErr *domain.InvalidArgumentError
	require.True(t, errors.As(err, &invalidArgErr))
	assert.Len(t, repo.users, 1)

	// Test case 2: missing id is a quiet no-op.
	deleted, err := deleteUC.Execute(context.Background(), "9999")
	require.NoError(t, err)
	assert.False(t, deleted)

	// Test case 3: existing id removes the row and both relations.
	rawID := strconv.FormatUint(uint64(id), 10)
	deleted, err = deleteUC.Execute(context.Background(), rawID)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.NotContains(t, repo.users, id)
	assert.NotContains(t, repo.settings, id)
	assert.NotContains(t, repo.providers, id)

	// Test case 4: deleting again reports false.
	deleted, err = deleteUC.Execute(context.Background(), rawID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
