//go:build unit

package section_test

import (
	"testing"
	"time"

	"campus-rooms/internal/domain/section"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSection(t *testing.T) {
	closeAt := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		s, err := section.NewSection(1, "CS101-A", 7, 28, 2, closeAt)
		require.NoError(t, err)

		assert.Equal(t, int64(1), s.SubjectID())
		assert.Equal(t, "CS101-A", s.Label())
		assert.Equal(t, int64(7), s.ProfessorID())
		assert.Equal(t, 28, s.Expected())
		assert.Equal(t, 2, s.Margin())
	})

	cases := []struct {
		name     string
		label    string
		expected int
		margin   int
		errIs    error
	}{
		{"empty label", "", 28, 2, section.ErrInvalidLabel},
		{"zero expected", "CS101-A", 0, 2, section.ErrInvalidExpected},
		{"negative margin", "CS101-A", 28, -1, section.ErrInvalidMargin},
		{"zero margin is fine", "CS101-A", 28, 0, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := section.NewSection(1, c.label, 7, c.expected, c.margin, closeAt)
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestRequiredCapacity(t *testing.T) {
	closeAt := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	s, err := section.NewSection(1, "CS101-A", 7, 28, 2, closeAt)
	require.NoError(t, err)

	t.Run("includes margin while enrollment is open", func(t *testing.T) {
		assert.Equal(t, 30, s.RequiredCapacity(closeAt.Add(-24*time.Hour)))
	})

	t.Run("drops margin once enrollment has closed", func(t *testing.T) {
		assert.Equal(t, 28, s.RequiredCapacity(closeAt))
		assert.Equal(t, 28, s.RequiredCapacity(closeAt.Add(24*time.Hour)))
	})
}
