package writer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/easyscheduler/admin-backend/internal/domain/writer"
)

func TestGetWriterRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	saveUC := newSaveUC(repo)

	payload := domain.Payload{
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "d@x.com",
		MobileNumber: "0700",
		PhoneNumber:  "123",
		Address:      "1 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62704",
		Notes:        "evening shifts",
		Providers:    []uint{7},
		Settings: &domain.SettingsInput{
			Username: "ddoe",
			Password: strPtr("longenough"),
		},
	}

	id, err := saveUC.Execute(context.Background(), payload)
	require.NoError(t, err)

	record, err := NewGetWriter(repo).Execute(context.Background(), id)
	require.NoError(t, err)

	// Every core field round-trips.
	assert.Equal(t, payload.FirstName, record.FirstName)
	assert.Equal(t, payload.LastName, record.LastName)
	assert.Equal(t, payload.Email, record.Email)
	assert.Equal(t, payload.MobileNumber, record.MobileNumber)
	assert.Equal(t, payload.PhoneNumber, record.PhoneNumber)
	assert.Equal(t, payload.Address, record.Address)
	assert.Equal(t, payload.City, record.City)
	assert.Equal(t, payload.State, record.State)
	assert.Equal(t, payload.ZipCode, record.ZipCode)
	assert.Equal(t, payload.Notes, record.Notes)
	assert.Equal(t, []uint{7}, record.Providers)
	assert.Equal(t, "ddoe", record.Settings.Username)

	// Neither the plaintext, the digest nor the salt surface in the
	// serialized read shape.
	encoded, err := json.Marshal(record)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "longenough")
	assert.NotContains(t, string(encoded), repo.settings[id].Password)
	assert.NotContains(t, string(encoded), repo.settings[id].Salt)
}

func TestGetWriterNotFound(t *testing.T) {
	repo := newFakeRepo()

	_, err := NewGetWriter(repo).Execute(context.Background(), 42)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestListWriters(t *testing.T) {
	repo := newFakeRepo()
	saveUC := newSaveUC(repo)

	// One non-writer that must never appear in batches.
	repo.seedUser(repo.otherRoleID, "provider@x.com")

	_, err := saveUC.Execute(context.Background(), domain.Payload{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "d@x.com",
		PhoneNumber: "123",
		Providers:   []uint{1},
	})
	require.NoError(t, err)

	_, err = saveUC.Execute(context.Background(), domain.Payload{
		FirstName:   "Anna",
		LastName:    "Smith",
		Email:       "s@x.com",
		PhoneNumber: "456",
	})
	require.NoError(t, err)

	listUC := NewListWriters(repo)

	// Test case 1: unfiltered batch holds only writer-role rows.
	records, err := listUC.Execute(context.Background(), domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []uint{1}, records[0].Providers)

	// Test case 2: query filter narrows by name or email.
	records, err = listUC.Execute(context.Background(), domain.ListFilter{Query: "smith"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Anna", records[0].FirstName)
}

func TestWriterSettingsDirectAccess(t *testing.T) {
	repo := newFakeRepo()
	saveUC := newSaveUC(repo)
	settingsUC := NewWriterSettings(repo)

	id, err := saveUC.Execute(context.Background(), domain.Payload{
		LastName:    "Doe",
		Email:       "d@x.com",
		PhoneNumber: "123",
		Settings:    &domain.SettingsInput{Username: "ddoe"},
	})
	require.NoError(t, err)

	value, err := settingsUC.Get(context.Background(), "username", id)
	require.NoError(t, err)
	assert.Equal(t, "ddoe", value)

	require.NoError(t, settingsUC.Set(context.Background(), "notifications", true, id))
	value, err = settingsUC.Get(context.Background(), "notifications", id)
	require.NoError(t, err)
	assert.Equal(t, "true", value)

	_, err = settingsUC.Get(context.Background(), "no_such_column", id)
	var invalidArgErr *domain.InvalidArgumentError
	assert.True(t, errors.As(err, &invalidArgErr))
}

func TestWriterSettingsSecretsUnreachable(t *testing.T) {
	repo := newFakeRepo()
	saveUC := newSaveUC(repo)
	settingsUC := NewWriterSettings(repo)

	id, err := saveUC.Execute(context.Background(), domain.Payload{
		LastName:    "Doe",
		Email:       "d@x.com",
		PhoneNumber: "123",
		Settings:    &domain.SettingsInput{Password: strPtr("longenough")},
	})
	require.NoError(t, err)

	var invalidArgErr *domain.InvalidArgumentError

	// Test case 1: neither the salt nor the digest can be read.
	for _, name := range []string{"salt", "password"} {
		_, err = settingsUC.Get(context.Background(), name, id)
		assert.True(t, errors.As(err, &invalidArgErr), "reading %s must be rejected", name)
	}

	// Test case 2: a direct password write is rejected before it reaches
	// storage, so the stored digest stays intact.
	digest := repo.settings[id].Password
	err = settingsUC.Set(context.Background(), "password", "plaintext-pw", id)
	assert.True(t, errors.As(err, &invalidArgErr))
	assert.Equal(t, digest, repo.settings[id].Password)
}
