//go:build unit

package changerequest_test

import (
	"testing"
	"time"

	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, kind changerequest.Kind) *changerequest.ChangeRequest {
	t.Helper()
	dates, err := schedule.NewDateRange(
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	req, err := changerequest.New(7, 3, 12, kind, dates,
		schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}},
		"projector broken in current room", time.Now())
	require.NoError(t, err)
	return req
}

func TestNew(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		req := newRequest(t, changerequest.KindTemporary)
		assert.Equal(t, changerequest.StatusPending, req.Status())
		assert.True(t, req.IsPending())
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		dates, err := schedule.NewDateRange(
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		_, err = changerequest.New(7, 3, 12, "forever", dates,
			schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}}, "", time.Now())
		require.ErrorIs(t, err, changerequest.ErrInvalidKind)
	})

	t.Run("rejects invalid pattern", func(t *testing.T) {
		dates, err := schedule.NewDateRange(
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		_, err = changerequest.New(7, 3, 12, changerequest.KindPermanent, dates,
			schedule.Pattern{}, "", time.Now())
		require.ErrorIs(t, err, schedule.ErrEmptyPattern)
	})
}

func TestTransitions(t *testing.T) {
	t.Run("approve is terminal", func(t *testing.T) {
		req := newRequest(t, changerequest.KindTemporary)

		require.NoError(t, req.Approve("room free, go ahead"))
		assert.Equal(t, changerequest.StatusApproved, req.Status())
		assert.Equal(t, "room free, go ahead", req.AdminComment())
		assert.False(t, req.IsPending())

		require.ErrorIs(t, req.Approve("again"), changerequest.ErrNotPending)
		require.ErrorIs(t, req.Reject("too late"), changerequest.ErrNotPending)
	})

	t.Run("reject is terminal", func(t *testing.T) {
		req := newRequest(t, changerequest.KindPermanent)

		require.NoError(t, req.Reject("room already promised"))
		assert.Equal(t, changerequest.StatusRejected, req.Status())

		require.ErrorIs(t, req.Approve("changed my mind"), changerequest.ErrNotPending)
	})
}

func TestDuplicateOf(t *testing.T) {
	a := newRequest(t, changerequest.KindTemporary)

	t.Run("same move is a duplicate regardless of kind and comment", func(t *testing.T) {
		b := newRequest(t, changerequest.KindPermanent)
		assert.True(t, a.DuplicateOf(b))
	})

	t.Run("different target room is not a duplicate", func(t *testing.T) {
		dates, err := schedule.NewDateRange(
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		b, err := changerequest.New(7, 3, 99, changerequest.KindTemporary, dates,
			schedule.Pattern{schedule.Monday: {schedule.BlockMorning1}}, "", time.Now())
		require.NoError(t, err)

		assert.False(t, a.DuplicateOf(b))
	})

	t.Run("different pattern is not a duplicate", func(t *testing.T) {
		dates, err := schedule.NewDateRange(
			time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		b, err := changerequest.New(7, 3, 12, changerequest.KindTemporary, dates,
			schedule.Pattern{schedule.Monday: {schedule.BlockMorning2}}, "", time.Now())
		require.NoError(t, err)

		assert.False(t, a.DuplicateOf(b))
	})
}
