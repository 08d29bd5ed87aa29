package writer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	ids map[string]uint
}

func (f *fakeResolver) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.ids[email]
	return ok, nil
}

func (f *fakeResolver) FindIDByEmail(_ context.Context, email string) (uint, error) {
	id, ok := f.ids[email]
	if !ok {
		return 0, ErrNotFound
	}
	return id, nil
}

func TestResolveSaveMode(t *testing.T) {
	resolver := &fakeResolver{ids: map[string]uint{"known@x.com": 7}}
	id5 := uint(5)

	tests := []struct {
		name    string
		payload Payload
		want    Resolution
	}{
		{
			name:    "explicit id wins",
			payload: Payload{ID: &id5, Email: "known@x.com"},
			want:    Resolution{Mode: ModeUpdateByID, ID: 5},
		},
		{
			name:    "no id, unknown email inserts",
			payload: Payload{Email: "new@x.com"},
			want:    Resolution{Mode: ModeInsert},
		},
		{
			name:    "no id, known email re-attaches",
			payload: Payload{Email: "known@x.com"},
			want:    Resolution{Mode: ModeUpdateByResolvedEmail, ID: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSaveMode(context.Background(), resolver, tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
