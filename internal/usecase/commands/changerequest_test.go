//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createParams(reservationID, roomID int64, kind changerequest.Kind) commands.CreateChangeRequestParams {
	return commands.CreateChangeRequestParams{
		ProfessorID:   7,
		ReservationID: reservationID,
		RoomID:        roomID,
		Kind:          kind,
		StartDate:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Pattern:       mondayMorning1,
		Comment:       "projector broken",
	}
}

func TestCreateChangeRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("basic success case", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)

		view, err := f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.NoError(t, err)

		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, "temporary", view.Kind)
		assert.Equal(t, "Prof", view.ProfessorName)
		assert.Equal(t, "102", view.RoomNumber)
		assert.Equal(t, res.ID, view.ReservationID)
		assert.Equal(t, "projector broken", view.ProfessorComment)
	})

	t.Run("identical pending request is a duplicate", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)

		_, err = f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.NoError(t, err)

		_, err = f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.ErrorIs(t, err, commands.ErrDuplicateRequest)
	})

	t.Run("decided request stops blocking a resubmission", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)

		view, err := f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.NoError(t, err)
		_, err = f.requests.Reject(ctx, view.ID, "no")
		require.NoError(t, err)

		_, err = f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.NoError(t, err)
	})

	t.Run("requester must be a professor", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)

		params := createParams(res.ID, 102, changerequest.KindTemporary)
		params.ProfessorID = 8 // admin
		_, err = f.requests.Create(ctx, params)
		require.ErrorIs(t, err, commands.ErrProfessorNotFound)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.requests.Create(ctx, createParams(999, 102, changerequest.KindTemporary))
		require.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("occupied target slot is rejected up front", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)
		_, err = f.reservations.Reserve(ctx, reserveParams(102, 1, mondayMorning1))
		require.NoError(t, err)

		_, err = f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("permanent move back onto its own slot is allowed", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)

		_, err = f.requests.Create(ctx, createParams(res.ID, 101, changerequest.KindPermanent))
		require.NoError(t, err)
	})
}

func TestApproveChangeRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("temporary approval spawns a parallel reservation", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)
		req, err := f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.NoError(t, err)

		view, err := f.requests.Approve(ctx, req.ID, "fine")
		require.NoError(t, err)

		assert.Equal(t, "approved", view.Status)
		assert.Equal(t, "fine", view.AdminComment)
		assert.Len(t, f.store.reservations, 2)
		// the original stays in its room
		assert.Equal(t, int64(101), f.store.reservations[res.ID].RoomID())
	})

	t.Run("permanent approval moves the original in place", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)
		req, err := f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindPermanent))
		require.NoError(t, err)

		view, err := f.requests.Approve(ctx, req.ID, "")
		require.NoError(t, err)

		assert.Equal(t, "approved", view.Status)
		assert.Len(t, f.store.reservations, 1)
		assert.Equal(t, int64(102), f.store.reservations[res.ID].RoomID())
	})

	t.Run("approval re-validates and leaves the request pending on conflict", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)
		req, err := f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.NoError(t, err)

		// the target slot fills up between request and decision
		_, err = f.reservations.Reserve(ctx, reserveParams(102, 1, mondayMorning1))
		require.NoError(t, err)

		_, err = f.requests.Approve(ctx, req.ID, "")
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)

		stillPending, err := f.requests.Approve(ctx, req.ID, "")
		require.ErrorIs(t, err, commands.ErrRoomUnavailable)
		assert.Nil(t, stillPending)
	})

	t.Run("second decision is refused", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)
		req, err := f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.NoError(t, err)

		_, err = f.requests.Approve(ctx, req.ID, "")
		require.NoError(t, err)

		_, err = f.requests.Approve(ctx, req.ID, "")
		require.ErrorIs(t, err, commands.ErrRequestNotPending)
		_, err = f.requests.Reject(ctx, req.ID, "")
		require.ErrorIs(t, err, commands.ErrRequestNotPending)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.requests.Approve(ctx, 999, "")
		require.ErrorIs(t, err, commands.ErrChangeRequestNotFound)
	})
}

func TestRejectChangeRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("leaves every reservation untouched", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)
		req, err := f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.NoError(t, err)

		view, err := f.requests.Reject(ctx, req.ID, "room promised elsewhere")
		require.NoError(t, err)

		assert.Equal(t, "rejected", view.Status)
		assert.Equal(t, "room promised elsewhere", view.AdminComment)
		assert.Len(t, f.store.reservations, 1)
		assert.Equal(t, int64(101), f.store.reservations[res.ID].RoomID())
	})

	t.Run("second rejection is refused", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.reservations.Reserve(ctx, reserveParams(101, 1, mondayMorning1))
		require.NoError(t, err)
		req, err := f.requests.Create(ctx, createParams(res.ID, 102, changerequest.KindTemporary))
		require.NoError(t, err)

		_, err = f.requests.Reject(ctx, req.ID, "no")
		require.NoError(t, err)

		_, err = f.requests.Reject(ctx, req.ID, "still no")
		require.ErrorIs(t, err, commands.ErrRequestNotPending)
	})
}
