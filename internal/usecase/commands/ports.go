package commands

import (
	"context"

	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/section"
	"campus-rooms/internal/domain/user"
	"campus-rooms/internal/infra/db"
)

// Write-side ports. Every method takes an explicit DBTX so command flows can
// run their whole read-validate-write cycle inside one transaction.

type RoomRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*room.Room, error)
	Save(ctx context.Context, dbtx db.DBTX, entity *room.Room) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, entity *room.Room) error
	DeleteByID(ctx context.Context, dbtx db.DBTX, id int64) error
}

type SectionRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*section.Section, error)
}

type SubjectRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*section.Subject, error)
}

type ReservationRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*reservation.Reservation, error)
	FindByRoomIDs(ctx context.Context, dbtx db.DBTX, roomIDs []int64) ([]*reservation.Reservation, error)
	Save(ctx context.Context, dbtx db.DBTX, entity *reservation.Reservation) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, entity *reservation.Reservation) error
	DeleteByID(ctx context.Context, dbtx db.DBTX, id int64) error
	ExistsByRoomID(ctx context.Context, dbtx db.DBTX, roomID int64) (bool, error)
}

type ChangeRequestRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*changerequest.ChangeRequest, error)
	FindByReservationID(ctx context.Context, dbtx db.DBTX, reservationID int64) ([]*changerequest.ChangeRequest, error)
	Save(ctx context.Context, dbtx db.DBTX, entity *changerequest.ChangeRequest) (int64, error)
	Update(ctx context.Context, dbtx db.DBTX, entity *changerequest.ChangeRequest) error
}

type UserRepository interface {
	FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*user.User, error)
	FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error)
}
