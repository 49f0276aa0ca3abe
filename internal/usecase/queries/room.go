package queries

import (
	"context"

	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/infra/db"
)

// Read model (DTO for read side)
type RoomView struct {
	ID           int64  `json:"id"`
	Number       string `json:"number"`
	Capacity     int    `json:"capacity"`
	HasProjector bool   `json:"has_projector"`
	HasTV        bool   `json:"has_tv"`
	Kind         string `json:"kind"`
	Computers    int    `json:"computers,omitempty"`
}

// RoomFilter narrows the candidate pool before any availability arithmetic.
type RoomFilter struct {
	MinCapacity    int
	NeedsProjector bool
	NeedsTV        bool
	LabOnly        bool
}

func (f RoomFilter) matches(r *room.Room) bool {
	if f.MinCapacity > 0 && r.Capacity() < f.MinCapacity {
		return false
	}
	if f.NeedsProjector && !r.HasProjector() {
		return false
	}
	if f.NeedsTV && !r.HasTV() {
		return false
	}
	if f.LabOnly && !r.IsLab() {
		return false
	}
	return true
}

type RoomQueries interface {
	List(ctx context.Context, filter RoomFilter) ([]*RoomView, error)
	GetByID(ctx context.Context, id int64) (*RoomView, error)
}

type roomQueriesImpl struct {
	rooms RoomReader
	db    db.DBTX
}

func NewRoomQueries(rooms RoomReader, dbtx db.DBTX) RoomQueries {
	return &roomQueriesImpl{rooms: rooms, db: dbtx}
}

func (q *roomQueriesImpl) List(ctx context.Context, filter RoomFilter) ([]*RoomView, error) {
	all, err := q.rooms.GetAll(ctx, q.db)
	if err != nil {
		return nil, err
	}

	out := make([]*RoomView, 0, len(all))
	for _, r := range all {
		if filter.matches(r) {
			out = append(out, toRoomView(r))
		}
	}
	return out, nil
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id int64) (*RoomView, error) {
	r, err := q.rooms.FindByID(ctx, q.db, id)
	if err != nil {
		return nil, err
	}
	return toRoomView(r), nil
}

func toRoomView(r *room.Room) *RoomView {
	return &RoomView{
		ID:           r.ID(),
		Number:       r.Number(),
		Capacity:     r.Capacity(),
		HasProjector: r.HasProjector(),
		HasTV:        r.HasTV(),
		Kind:         string(r.Kind()),
		Computers:    r.Computers(),
	}
}
