package commands

import (
	"context"

	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
	"campus-rooms/internal/pkg/errs"
	"campus-rooms/internal/usecase/queries"
	"campus-rooms/internal/usecase/shared"
)

var (
	ErrInvalidRoom         = errs.New("invalid room")
	ErrDuplicateRoomNumber = errs.New("room number already registered")
	ErrRoomInUse           = errs.New("room has active reservations")
)

type RoomParams struct {
	Number       string
	Capacity     int
	HasProjector bool
	HasTV        bool
	Kind         room.Kind
	Computers    int
}

type RoomCommands interface {
	Create(ctx context.Context, params RoomParams) (*queries.RoomView, error)
	Update(ctx context.Context, id int64, params RoomParams) (*queries.RoomView, error)
	Delete(ctx context.Context, id int64) error
}

type roomCommandsImpl struct {
	rooms        RoomRepository
	reservations ReservationRepository
	roomQueries  queries.RoomQueries
	uow          shared.UnitOfWork
}

func NewRoomCommands(rooms RoomRepository, reservations ReservationRepository, roomQueries queries.RoomQueries, uow shared.UnitOfWork) RoomCommands {
	return &roomCommandsImpl{
		rooms:        rooms,
		reservations: reservations,
		roomQueries:  roomQueries,
		uow:          uow,
	}
}

func buildRoom(params RoomParams) (*room.Room, error) {
	switch params.Kind {
	case room.KindStandard:
		return room.NewStandard(params.Number, params.Capacity, params.HasProjector, params.HasTV)
	case room.KindLab:
		return room.NewLab(params.Number, params.Capacity, params.HasProjector, params.HasTV, params.Computers)
	default:
		return nil, room.ErrInvalidKind
	}
}

func (c *roomCommandsImpl) Create(ctx context.Context, params RoomParams) (*queries.RoomView, error) {
	entity, err := buildRoom(params)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRoom)
	}

	id, err := c.rooms.Save(ctx, c.uow.DB(), entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateRoomNumber
		}
		return nil, markStore(err)
	}

	return c.roomQueries.GetByID(ctx, id)
}

func (c *roomCommandsImpl) Update(ctx context.Context, id int64, params RoomParams) (*queries.RoomView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, findErr := c.rooms.FindByID(ctx, tx, id); findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return markStore(findErr)
		}

		validated, buildErr := buildRoom(params)
		if buildErr != nil {
			return errs.Mark(buildErr, ErrInvalidRoom)
		}
		entity := room.Reconstruct(id, validated.Number(), validated.Capacity(), validated.HasProjector(), validated.HasTV(), validated.Kind(), validated.Computers())

		if updateErr := c.rooms.Update(ctx, tx, entity); updateErr != nil {
			if infra.IsKind(updateErr, infra.KindDuplicateKey) {
				return ErrDuplicateRoomNumber
			}
			return markStore(updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.roomQueries.GetByID(ctx, id)
}

// Delete refuses while any reservation still points at the room; callers must
// cancel or move those first.
func (c *roomCommandsImpl) Delete(ctx context.Context, id int64) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		inUse, err := c.reservations.ExistsByRoomID(ctx, tx, id)
		if err != nil {
			return markStore(err)
		}
		if inUse {
			return ErrRoomInUse
		}

		if err := c.rooms.DeleteByID(ctx, tx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return markStore(err)
		}
		return nil
	})
}
