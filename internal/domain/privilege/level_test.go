package privilege

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOrdering(t *testing.T) {
	ordered := []Level{LevelNone, LevelView, LevelEdit, LevelAdd, LevelDelete}

	// Strictly increasing, so comparisons are transitive.
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, int(ordered[i-1]), int(ordered[i]),
			"%s must rank below %s", ordered[i-1], ordered[i])
	}

	// Every level at or above another satisfies it.
	for i, min := range ordered {
		for j, l := range ordered {
			assert.Equal(t, j >= i, l.Satisfies(min),
				"%s.Satisfies(%s)", l, min)
		}
	}
}

func TestLevelSatisfiesView(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  bool
	}{
		{"none is denied", LevelNone, false},
		{"view is allowed", LevelView, true},
		{"edit is allowed", LevelEdit, true},
		{"add is allowed", LevelAdd, true},
		{"delete is allowed", LevelDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.Satisfies(LevelView))
		})
	}
}

func TestKnownPage(t *testing.T) {
	for _, p := range Pages() {
		assert.True(t, KnownPage(p))
	}
	assert.False(t, KnownPage(Page("billing")))
}
