//go:build unit

package commands_test

import (
	"context"
	"sort"

	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/section"
	"campus-rooms/internal/domain/user"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
)

// In-memory store shared by the fake repositories, so command flows observe
// their own writes the way a transaction would.
type memStore struct {
	rooms        map[int64]*room.Room
	sections     map[int64]*section.Section
	subjects     map[int64]*section.Subject
	reservations map[int64]*reservation.Reservation
	requests     map[int64]*changerequest.ChangeRequest
	users        map[int64]*user.User
	nextID       int64
}

func newMemStore() *memStore {
	return &memStore{
		rooms:        map[int64]*room.Room{},
		sections:     map[int64]*section.Section{},
		subjects:     map[int64]*section.Subject{},
		reservations: map[int64]*reservation.Reservation{},
		requests:     map[int64]*changerequest.ChangeRequest{},
		users:        map[int64]*user.User{},
		nextID:       1000,
	}
}

func (s *memStore) allocID() int64 {
	s.nextID++
	return s.nextID
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func sortedIDs[V any](m map[int64]V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type fakeUoW struct {
	store *memStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) DB() db.DBTX { return nil }

type fakeRooms struct{ s *memStore }

func (f *fakeRooms) GetAll(_ context.Context, _ db.DBTX) ([]*room.Room, error) {
	out := make([]*room.Room, 0, len(f.s.rooms))
	for _, id := range sortedIDs(f.s.rooms) {
		out = append(out, f.s.rooms[id])
	}
	return out, nil
}

func (f *fakeRooms) FindByID(_ context.Context, _ db.DBTX, id int64) (*room.Room, error) {
	r, ok := f.s.rooms[id]
	if !ok {
		return nil, notFound("room")
	}
	return r, nil
}

func (f *fakeRooms) Save(_ context.Context, _ db.DBTX, entity *room.Room) (int64, error) {
	for _, existing := range f.s.rooms {
		if existing.Number() == entity.Number() {
			return 0, infra.WrapRepoErr("duplicate room number", nil, infra.KindDuplicateKey)
		}
	}
	id := f.s.allocID()
	f.s.rooms[id] = room.Reconstruct(id, entity.Number(), entity.Capacity(),
		entity.HasProjector(), entity.HasTV(), entity.Kind(), entity.Computers())
	return id, nil
}

func (f *fakeRooms) Update(_ context.Context, _ db.DBTX, entity *room.Room) error {
	if _, ok := f.s.rooms[entity.ID()]; !ok {
		return notFound("room")
	}
	f.s.rooms[entity.ID()] = entity
	return nil
}

func (f *fakeRooms) DeleteByID(_ context.Context, _ db.DBTX, id int64) error {
	if _, ok := f.s.rooms[id]; !ok {
		return notFound("room")
	}
	delete(f.s.rooms, id)
	return nil
}

type fakeSections struct{ s *memStore }

func (f *fakeSections) FindByID(_ context.Context, _ db.DBTX, id int64) (*section.Section, error) {
	sec, ok := f.s.sections[id]
	if !ok {
		return nil, notFound("section")
	}
	return sec, nil
}

type fakeSubjects struct{ s *memStore }

func (f *fakeSubjects) FindByID(_ context.Context, _ db.DBTX, id int64) (*section.Subject, error) {
	sub, ok := f.s.subjects[id]
	if !ok {
		return nil, notFound("subject")
	}
	return sub, nil
}

type fakeReservations struct{ s *memStore }

func (f *fakeReservations) GetAll(_ context.Context, _ db.DBTX) ([]*reservation.Reservation, error) {
	out := make([]*reservation.Reservation, 0, len(f.s.reservations))
	for _, id := range sortedIDs(f.s.reservations) {
		out = append(out, f.s.reservations[id])
	}
	return out, nil
}

func (f *fakeReservations) FindByID(_ context.Context, _ db.DBTX, id int64) (*reservation.Reservation, error) {
	res, ok := f.s.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	return res, nil
}

func (f *fakeReservations) FindByRoomIDs(_ context.Context, _ db.DBTX, roomIDs []int64) ([]*reservation.Reservation, error) {
	wanted := make(map[int64]struct{}, len(roomIDs))
	for _, id := range roomIDs {
		wanted[id] = struct{}{}
	}
	var out []*reservation.Reservation
	for _, id := range sortedIDs(f.s.reservations) {
		if _, ok := wanted[f.s.reservations[id].RoomID()]; ok {
			out = append(out, f.s.reservations[id])
		}
	}
	return out, nil
}

func (f *fakeReservations) Save(_ context.Context, _ db.DBTX, entity *reservation.Reservation) (int64, error) {
	id := f.s.allocID()
	f.s.reservations[id] = reservation.Reconstruct(id, entity.RoomID(), entity.SectionID(), entity.Dates(), entity.Pattern())
	return id, nil
}

func (f *fakeReservations) Update(_ context.Context, _ db.DBTX, entity *reservation.Reservation) error {
	if _, ok := f.s.reservations[entity.ID()]; !ok {
		return notFound("reservation")
	}
	f.s.reservations[entity.ID()] = entity
	return nil
}

func (f *fakeReservations) DeleteByID(_ context.Context, _ db.DBTX, id int64) error {
	if _, ok := f.s.reservations[id]; !ok {
		return notFound("reservation")
	}
	delete(f.s.reservations, id)
	return nil
}

func (f *fakeReservations) ExistsByRoomID(_ context.Context, _ db.DBTX, roomID int64) (bool, error) {
	for _, res := range f.s.reservations {
		if res.RoomID() == roomID {
			return true, nil
		}
	}
	return false, nil
}

type fakeRequests struct{ s *memStore }

func (f *fakeRequests) FindByID(_ context.Context, _ db.DBTX, id int64) (*changerequest.ChangeRequest, error) {
	req, ok := f.s.requests[id]
	if !ok {
		return nil, notFound("change request")
	}
	return req, nil
}

func (f *fakeRequests) FindByStatus(_ context.Context, _ db.DBTX, status changerequest.Status) ([]*changerequest.ChangeRequest, error) {
	var out []*changerequest.ChangeRequest
	for _, id := range sortedIDs(f.s.requests) {
		if f.s.requests[id].Status() == status {
			out = append(out, f.s.requests[id])
		}
	}
	return out, nil
}

func (f *fakeRequests) FindByStatusAndProfessor(_ context.Context, _ db.DBTX, status changerequest.Status, professorID int64) ([]*changerequest.ChangeRequest, error) {
	var out []*changerequest.ChangeRequest
	for _, id := range sortedIDs(f.s.requests) {
		req := f.s.requests[id]
		if req.Status() == status && req.ProfessorID() == professorID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRequests) FindByReservationID(_ context.Context, _ db.DBTX, reservationID int64) ([]*changerequest.ChangeRequest, error) {
	var out []*changerequest.ChangeRequest
	for _, id := range sortedIDs(f.s.requests) {
		if f.s.requests[id].ReservationID() == reservationID {
			out = append(out, f.s.requests[id])
		}
	}
	return out, nil
}

func (f *fakeRequests) Save(_ context.Context, _ db.DBTX, entity *changerequest.ChangeRequest) (int64, error) {
	id := f.s.allocID()
	f.s.requests[id] = changerequest.Reconstruct(id, entity.ProfessorID(), entity.ReservationID(),
		entity.RoomID(), entity.Kind(), entity.Status(), entity.Dates(), entity.Pattern(),
		entity.ProfessorComment(), entity.AdminComment(), entity.CreatedAt())
	return id, nil
}

func (f *fakeRequests) Update(_ context.Context, _ db.DBTX, entity *changerequest.ChangeRequest) error {
	if _, ok := f.s.requests[entity.ID()]; !ok {
		return notFound("change request")
	}
	f.s.requests[entity.ID()] = entity
	return nil
}

type fakeUsers struct{ s *memStore }

func (f *fakeUsers) FindByID(_ context.Context, _ db.DBTX, id int64) (*user.User, error) {
	u, ok := f.s.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, _ db.DBTX, email string) (*user.User, error) {
	for _, id := range sortedIDs(f.s.users) {
		if f.s.users[id].Email() == email {
			return f.s.users[id], nil
		}
	}
	return nil, notFound("user")
}
