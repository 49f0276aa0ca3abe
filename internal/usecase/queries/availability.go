package queries

import (
	"context"

	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/infra/db"
	"campus-rooms/internal/pkg/errs"
)

var ErrInvalidSchedule = errs.New("invalid schedule")

type AvailableRoomsParams struct {
	Dates   schedule.DateRange
	Pattern schedule.Pattern
	Filter  RoomFilter
}

// AvailabilityQueries is the availability engine: given a candidate schedule
// and a room filter, it returns the rooms with no conflicting reservation.
// It holds no state between calls and performs no writes.
type AvailabilityQueries interface {
	FindAvailableRooms(ctx context.Context, params AvailableRoomsParams) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	rooms        RoomReader
	reservations ReservationReader
	db           db.DBTX
}

func NewAvailabilityQueries(rooms RoomReader, reservations ReservationReader, dbtx db.DBTX) AvailabilityQueries {
	return &availabilityQueriesImpl{
		rooms:        rooms,
		reservations: reservations,
		db:           dbtx,
	}
}

func (q *availabilityQueriesImpl) FindAvailableRooms(ctx context.Context, params AvailableRoomsParams) ([]*RoomView, error) {
	if err := params.Pattern.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}

	all, err := q.rooms.GetAll(ctx, q.db)
	if err != nil {
		return nil, err
	}

	pool := make([]*room.Room, 0, len(all))
	for _, r := range all {
		if params.Filter.matches(r) {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		return []*RoomView{}, nil
	}

	poolIDs := make([]int64, len(pool))
	for i, r := range pool {
		poolIDs[i] = r.ID()
	}

	existing, err := q.reservations.FindByRoomIDs(ctx, q.db, poolIDs)
	if err != nil {
		return nil, err
	}

	free := FilterAvailable(pool, existing, params.Dates, params.Pattern, 0)
	out := make([]*RoomView, len(free))
	for i, r := range free {
		out[i] = toRoomView(r)
	}
	return out, nil
}

// FilterAvailable is the pure core of the engine: it removes from pool every
// room holding a reservation that collides with the candidate schedule on all
// three dimensions (date range, weekday, block), preserving pool order.
// Reservations with ignoreReservationID are skipped so a reservation being
// rescheduled never conflicts with itself.
func FilterAvailable(pool []*room.Room, existing []*reservation.Reservation, dates schedule.DateRange, pattern schedule.Pattern, ignoreReservationID int64) []*room.Room {
	occupied := make(map[int64]struct{})
	for _, res := range existing {
		if ignoreReservationID != 0 && res.ID() == ignoreReservationID {
			continue
		}
		if res.OccupiesSchedule(dates, pattern) {
			occupied[res.RoomID()] = struct{}{}
		}
	}

	out := make([]*room.Room, 0, len(pool))
	for _, r := range pool {
		if _, taken := occupied[r.ID()]; !taken {
			out = append(out, r)
		}
	}
	return out
}
