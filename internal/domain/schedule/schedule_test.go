//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"campus-rooms/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) schedule.DateRange {
	t.Helper()
	r, err := schedule.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestBlockCatalog(t *testing.T) {
	catalog := schedule.Catalog()
	require.Len(t, catalog, 6)

	assert.Equal(t, schedule.BlockMorning1, catalog[0].Block)
	assert.Equal(t, schedule.BlockEvening2, catalog[5].Block)
	assert.Equal(t, "08:00", catalog[0].Starts)
	assert.Equal(t, "22:30", catalog[5].Ends)

	for _, info := range catalog {
		assert.True(t, info.Block.IsValid())
	}
	assert.False(t, schedule.Block("midnight-1").IsValid())
}

func TestNewDateRange(t *testing.T) {
	t.Run("rejects end before start", func(t *testing.T) {
		_, err := schedule.NewDateRange(date(2026, 3, 10), date(2026, 3, 9))
		require.ErrorIs(t, err, schedule.ErrInvalidDateRange)
	})

	t.Run("single day range is valid", func(t *testing.T) {
		r, err := schedule.NewDateRange(date(2026, 3, 10), date(2026, 3, 10))
		require.NoError(t, err)
		assert.Equal(t, r.Start(), r.End())
	})

	t.Run("drops the time of day", func(t *testing.T) {
		r, err := schedule.NewDateRange(
			time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 3, 12, 0, 1, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 3, 10), r.Start())
		assert.Equal(t, date(2026, 3, 12), r.End())
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, date(2026, 4, 1), date(2026, 4, 30))

	cases := []struct {
		name     string
		other    schedule.DateRange
		overlaps bool
	}{
		{"fully inside", mustRange(t, date(2026, 4, 10), date(2026, 4, 20)), true},
		{"fully covering", mustRange(t, date(2026, 3, 1), date(2026, 5, 31)), true},
		{"touching at start boundary", mustRange(t, date(2026, 3, 1), date(2026, 4, 1)), true},
		{"touching at end boundary", mustRange(t, date(2026, 4, 30), date(2026, 5, 15)), true},
		{"ends the day before", mustRange(t, date(2026, 3, 1), date(2026, 3, 31)), false},
		{"starts the day after", mustRange(t, date(2026, 5, 1), date(2026, 5, 31)), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, base.Overlaps(c.other))
			assert.Equal(t, c.overlaps, c.other.Overlaps(base))
		})
	}
}

func TestPatternValidate(t *testing.T) {
	cases := []struct {
		name    string
		pattern schedule.Pattern
		errIs   error
	}{
		{
			name:    "valid single slot",
			pattern: schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}},
		},
		{
			name: "valid multi day",
			pattern: schedule.Pattern{
				schedule.Monday:   {schedule.BlockMorning1, schedule.BlockMorning2},
				schedule.Thursday: {schedule.BlockEvening1},
			},
		},
		{
			name:    "empty pattern",
			pattern: schedule.Pattern{},
			errIs:   schedule.ErrEmptyPattern,
		},
		{
			name:    "unknown weekday",
			pattern: schedule.Pattern{"funday": {schedule.BlockMorning1}},
			errIs:   schedule.ErrUnknownWeekday,
		},
		{
			name:    "weekday without blocks",
			pattern: schedule.Pattern{schedule.Monday: {}},
			errIs:   schedule.ErrEmptyBlockSet,
		},
		{
			name:    "unknown block",
			pattern: schedule.Pattern{schedule.Monday: {"brunch-1"}},
			errIs:   schedule.ErrUnknownBlock,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.pattern.Validate()
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestPatternNormalize(t *testing.T) {
	p := schedule.Pattern{
		schedule.Monday: {schedule.BlockEvening1, schedule.BlockMorning1, schedule.BlockEvening1},
	}

	want := schedule.Pattern{
		schedule.Monday: {schedule.BlockMorning1, schedule.BlockEvening1},
	}
	if diff := cmp.Diff(want, p.Normalize()); diff != "" {
		t.Errorf("normalized pattern mismatch (-want +got):\n%s", diff)
	}

	// original left untouched
	assert.Len(t, p[schedule.Monday], 3)
}

func TestPatternOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     schedule.Pattern
		overlaps bool
	}{
		{
			name:     "same day same block",
			a:        schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}},
			b:        schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}},
			overlaps: true,
		},
		{
			name:     "same day different blocks",
			a:        schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}},
			b:        schedule.Pattern{schedule.Monday: {schedule.BlockMorning2}},
			overlaps: false,
		},
		{
			name:     "shared block on different days",
			a:        schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}},
			b:        schedule.Pattern{schedule.Tuesday: {schedule.BlockMorning1}},
			overlaps: false,
		},
		{
			name: "one shared slot among many",
			a: schedule.Pattern{
				schedule.Monday: {schedule.BlockMorning1, schedule.BlockAfternoon1},
				schedule.Friday: {schedule.BlockEvening2},
			},
			b: schedule.Pattern{
				schedule.Friday: {schedule.BlockEvening1, schedule.BlockEvening2},
			},
			overlaps: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, c.a.Overlaps(c.b))
			assert.Equal(t, c.overlaps, c.b.Overlaps(c.a))
		})
	}
}

func TestPatternEqual(t *testing.T) {
	a := schedule.Pattern{schedule.Monday: {schedule.BlockMorning1, schedule.BlockMorning2}}
	b := schedule.Pattern{schedule.Monday: {schedule.BlockMorning2, schedule.BlockMorning1}}
	c := schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(schedule.Pattern{schedule.Tuesday: {schedule.BlockMorning1}}))
}

func TestConflicts(t *testing.T) {
	spring := mustRange(t, date(2026, 4, 1), date(2026, 6, 30))
	fall := mustRange(t, date(2026, 9, 1), date(2026, 12, 20))
	mondayMorning1 := schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}}
	mondayMorning2 := schedule.Pattern{schedule.Monday: {schedule.BlockMorning2}}

	t.Run("same semester adjacent blocks do not conflict", func(t *testing.T) {
		assert.False(t, schedule.Conflicts(spring, mondayMorning1, spring, mondayMorning2))
	})

	t.Run("same slot in disjoint semesters does not conflict", func(t *testing.T) {
		assert.False(t, schedule.Conflicts(spring, mondayMorning1, fall, mondayMorning1))
	})

	t.Run("same slot in overlapping ranges conflicts", func(t *testing.T) {
		summer := mustRange(t, date(2026, 6, 1), date(2026, 8, 31))
		assert.True(t, schedule.Conflicts(spring, mondayMorning1, summer, mondayMorning1))
	})
}
