package commands

import (
	"context"
	"time"

	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
	"campus-rooms/internal/pkg/clock"
	"campus-rooms/internal/pkg/errs"
	"campus-rooms/internal/usecase/queries"
	"campus-rooms/internal/usecase/shared"
)

var (
	ErrSectionNotFound      = errs.New("section not found")
	ErrSubjectNotFound      = errs.New("subject not found")
	ErrRoomNotFound         = errs.New("room not found")
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrInvalidSchedule      = errs.New("invalid schedule")
	ErrRoomUnavailable      = errs.New("room not available for requested schedule")
	ErrCapacityInsufficient = errs.New("room capacity insufficient for section")
	ErrRoomNotLab           = errs.New("room is not a lab")
	ErrStoreFailure         = errs.New("store unavailable")
)

type ReserveParams struct {
	RoomID    int64
	SectionID int64
	StartDate time.Time
	EndDate   time.Time
	Pattern   schedule.Pattern
}

type ReservationCommands interface {
	Reserve(ctx context.Context, params ReserveParams) (*queries.ReservationView, error)
	Update(ctx context.Context, id int64, params ReserveParams) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id int64) error
}

type reservationCommandsImpl struct {
	repos              placementRepos
	reservationQueries queries.ReservationQueries
	uow                shared.UnitOfWork
	clock              clock.Clock
}

func NewReservationCommands(
	rooms RoomRepository,
	sections SectionRepository,
	subjects SubjectRepository,
	reservations ReservationRepository,
	reservationQueries queries.ReservationQueries,
	uow shared.UnitOfWork,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		repos: placementRepos{
			rooms:        rooms,
			sections:     sections,
			subjects:     subjects,
			reservations: reservations,
		},
		reservationQueries: reservationQueries,
		uow:                uow,
		clock:              clk,
	}
}

func (c *reservationCommandsImpl) Reserve(ctx context.Context, params ReserveParams) (*queries.ReservationView, error) {
	dates, err := schedule.NewDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}
	entity, err := reservation.New(params.RoomID, params.SectionID, dates, params.Pattern)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := c.repos.validatePlacement(ctx, tx, params.RoomID, params.SectionID, dates, entity.Pattern(), 0, c.clock.Now()); err != nil {
			return err
		}

		savedID, saveErr := c.repos.reservations.Save(ctx, tx, entity)
		if saveErr != nil {
			return markStore(saveErr)
		}
		id = savedID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reservationQueries.GetByID(ctx, id)
}

// Update re-runs the availability, capacity and lab checks against the new
// proposed schedule; the section reference of the reservation never changes.
func (c *reservationCommandsImpl) Update(ctx context.Context, id int64, params ReserveParams) (*queries.ReservationView, error) {
	dates, err := schedule.NewDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}
	if err := params.Pattern.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		existing, findErr := c.repos.reservations.FindByID(ctx, tx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return markStore(findErr)
		}

		if err := c.repos.validatePlacement(ctx, tx, params.RoomID, existing.SectionID(), dates, params.Pattern.Normalize(), existing.ID(), c.clock.Now()); err != nil {
			return err
		}

		if err := existing.Reschedule(params.RoomID, dates, params.Pattern); err != nil {
			return errs.Mark(err, ErrInvalidSchedule)
		}
		if updateErr := c.repos.reservations.Update(ctx, tx, existing); updateErr != nil {
			return markStore(updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reservationQueries.GetByID(ctx, id)
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id int64) error {
	err := c.repos.reservations.DeleteByID(ctx, c.uow.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return markStore(err)
	}
	return nil
}

// placementRepos bundles the stores the reservation precondition chain reads.
type placementRepos struct {
	rooms        RoomRepository
	sections     SectionRepository
	subjects     SubjectRepository
	reservations ReservationRepository
}

// validatePlacement runs the reservation preconditions in order, each with a
// distinct failure: section exists, room exists, room free for the schedule,
// capacity sufficient, lab present when the subject demands one.
func (p placementRepos) validatePlacement(ctx context.Context, tx db.DBTX, roomID, sectionID int64, dates schedule.DateRange, pattern schedule.Pattern, ignoreReservationID int64, now time.Time) error {
	sec, err := p.sections.FindByID(ctx, tx, sectionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSectionNotFound
		}
		return markStore(err)
	}

	roomEntity, err := p.rooms.FindByID(ctx, tx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRoomNotFound
		}
		return markStore(err)
	}

	existing, err := p.reservations.FindByRoomIDs(ctx, tx, []int64{roomID})
	if err != nil {
		return markStore(err)
	}
	free := queries.FilterAvailable([]*room.Room{roomEntity}, existing, dates, pattern, ignoreReservationID)
	if len(free) == 0 {
		return ErrRoomUnavailable
	}

	if roomEntity.Capacity() < sec.RequiredCapacity(now) {
		return ErrCapacityInsufficient
	}

	subject, err := p.subjects.FindByID(ctx, tx, sec.SubjectID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrSubjectNotFound
		}
		return markStore(err)
	}
	if subject.RequiresLab() && !roomEntity.IsLab() {
		return ErrRoomNotLab
	}

	return nil
}

// markStore keeps infrastructure failures distinct from business rejections.
func markStore(err error) error {
	return errs.Mark(err, ErrStoreFailure)
}
