package queries

import (
	"context"

	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/section"
	"campus-rooms/internal/domain/user"
	"campus-rooms/internal/infra/db"
)

// Read-side ports, hydrated into views by cross-collection lookup here.

type RoomReader interface {
	GetAll(ctx context.Context, dbtx db.DBTX) ([]*room.Room, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*room.Room, error)
}

type ReservationReader interface {
	GetAll(ctx context.Context, dbtx db.DBTX) ([]*reservation.Reservation, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*reservation.Reservation, error)
	FindByRoomIDs(ctx context.Context, dbtx db.DBTX, roomIDs []int64) ([]*reservation.Reservation, error)
}

type SectionReader interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*section.Section, error)
}

type UserReader interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*user.User, error)
}

type ChangeRequestReader interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*changerequest.ChangeRequest, error)
	FindByStatus(ctx context.Context, dbtx db.DBTX, status changerequest.Status) ([]*changerequest.ChangeRequest, error)
	FindByStatusAndProfessor(ctx context.Context, dbtx db.DBTX, status changerequest.Status, professorID int64) ([]*changerequest.ChangeRequest, error)
}
