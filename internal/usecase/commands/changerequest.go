package commands

import (
	"context"
	"errors"
	"time"

	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/domain/user"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
	"campus-rooms/internal/pkg/clock"
	"campus-rooms/internal/pkg/errs"
	"campus-rooms/internal/usecase/queries"
	"campus-rooms/internal/usecase/shared"
)

var (
	ErrProfessorNotFound     = errs.New("professor not found")
	ErrChangeRequestNotFound = errs.New("change request not found")
	ErrRequestNotPending     = errs.New("change request already decided")
	ErrDuplicateRequest      = errs.New("identical change request already pending")
	ErrInvalidRequest        = errs.New("invalid change request")
)

type CreateChangeRequestParams struct {
	ProfessorID   int64
	ReservationID int64
	RoomID        int64
	Kind          changerequest.Kind
	StartDate     time.Time
	EndDate       time.Time
	Pattern       schedule.Pattern
	Comment       string
}

type ChangeRequestCommands interface {
	Create(ctx context.Context, params CreateChangeRequestParams) (*queries.ChangeRequestView, error)
	Approve(ctx context.Context, id int64, adminComment string) (*queries.ChangeRequestView, error)
	Reject(ctx context.Context, id int64, adminComment string) (*queries.ChangeRequestView, error)
}

type changeRequestCommandsImpl struct {
	repos          placementRepos
	requests       ChangeRequestRepository
	users          UserRepository
	requestQueries queries.ChangeRequestQueries
	uow            shared.UnitOfWork
	clock          clock.Clock
}

func NewChangeRequestCommands(
	rooms RoomRepository,
	sections SectionRepository,
	subjects SubjectRepository,
	reservations ReservationRepository,
	requests ChangeRequestRepository,
	users UserRepository,
	requestQueries queries.ChangeRequestQueries,
	uow shared.UnitOfWork,
	clk clock.Clock,
) ChangeRequestCommands {
	return &changeRequestCommandsImpl{
		repos: placementRepos{
			rooms:        rooms,
			sections:     sections,
			subjects:     subjects,
			reservations: reservations,
		},
		requests:       requests,
		users:          users,
		requestQueries: requestQueries,
		uow:            uow,
		clock:          clk,
	}
}

func (c *changeRequestCommandsImpl) Create(ctx context.Context, params CreateChangeRequestParams) (*queries.ChangeRequestView, error) {
	dates, err := schedule.NewDateRange(params.StartDate, params.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}
	entity, err := changerequest.New(params.ProfessorID, params.ReservationID, params.RoomID, params.Kind, dates, params.Pattern, params.Comment, c.clock.Now())
	if err != nil {
		if errors.Is(err, changerequest.ErrInvalidKind) {
			return nil, errs.Mark(err, ErrInvalidRequest)
		}
		return nil, errs.Mark(err, ErrInvalidSchedule)
	}

	var id int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		professor, findErr := c.users.FindByID(ctx, tx, params.ProfessorID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrProfessorNotFound
			}
			return markStore(findErr)
		}
		if professor.Role() != user.RoleProfessor {
			return ErrProfessorNotFound
		}

		original, findErr := c.repos.reservations.FindByID(ctx, tx, params.ReservationID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return markStore(findErr)
		}

		target, findErr := c.repos.rooms.FindByID(ctx, tx, params.RoomID)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return markStore(findErr)
		}

		siblings, findErr := c.requests.FindByReservationID(ctx, tx, params.ReservationID)
		if findErr != nil {
			return markStore(findErr)
		}
		for _, sibling := range siblings {
			if sibling.IsPending() && entity.DuplicateOf(sibling) {
				return ErrDuplicateRequest
			}
		}

		// A permanent move frees the original slot, so the original
		// reservation must not block its own replacement.
		var ignoreID int64
		if params.Kind == changerequest.KindPermanent {
			ignoreID = original.ID()
		}
		existing, findErr := c.repos.reservations.FindByRoomIDs(ctx, tx, []int64{params.RoomID})
		if findErr != nil {
			return markStore(findErr)
		}
		free := queries.FilterAvailable([]*room.Room{target}, existing, dates, entity.Pattern(), ignoreID)
		if len(free) == 0 {
			return ErrRoomUnavailable
		}

		savedID, saveErr := c.requests.Save(ctx, tx, entity)
		if saveErr != nil {
			return markStore(saveErr)
		}
		id = savedID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.requestQueries.GetByID(ctx, id)
}

// Approve applies the requested move and flips the request state in one
// transaction. The reservation side runs first: if placement validation or
// the write fails, the request stays pending and can be retried or rejected.
func (c *changeRequestCommandsImpl) Approve(ctx context.Context, id int64, adminComment string) (*queries.ChangeRequestView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		req, findErr := c.requests.FindByID(ctx, tx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrChangeRequestNotFound
			}
			return markStore(findErr)
		}
		if !req.IsPending() {
			return ErrRequestNotPending
		}

		original, findErr := c.repos.reservations.FindByID(ctx, tx, req.ReservationID())
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return markStore(findErr)
		}

		switch req.Kind() {
		case changerequest.KindTemporary:
			if err := c.repos.validatePlacement(ctx, tx, req.RoomID(), original.SectionID(), req.Dates(), req.Pattern(), 0, c.clock.Now()); err != nil {
				return err
			}
			spawned, newErr := reservation.New(req.RoomID(), original.SectionID(), req.Dates(), req.Pattern())
			if newErr != nil {
				return errs.Mark(newErr, ErrInvalidSchedule)
			}
			if _, saveErr := c.repos.reservations.Save(ctx, tx, spawned); saveErr != nil {
				return markStore(saveErr)
			}
		case changerequest.KindPermanent:
			if err := c.repos.validatePlacement(ctx, tx, req.RoomID(), original.SectionID(), req.Dates(), req.Pattern(), original.ID(), c.clock.Now()); err != nil {
				return err
			}
			if err := original.Reschedule(req.RoomID(), req.Dates(), req.Pattern()); err != nil {
				return errs.Mark(err, ErrInvalidSchedule)
			}
			if updateErr := c.repos.reservations.Update(ctx, tx, original); updateErr != nil {
				return markStore(updateErr)
			}
		default:
			return ErrInvalidRequest
		}

		if err := req.Approve(adminComment); err != nil {
			return errs.Mark(err, ErrRequestNotPending)
		}
		if updateErr := c.requests.Update(ctx, tx, req); updateErr != nil {
			return markStore(updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.requestQueries.GetByID(ctx, id)
}

func (c *changeRequestCommandsImpl) Reject(ctx context.Context, id int64, adminComment string) (*queries.ChangeRequestView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		req, findErr := c.requests.FindByID(ctx, tx, id)
		if findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrChangeRequestNotFound
			}
			return markStore(findErr)
		}
		if !req.IsPending() {
			return ErrRequestNotPending
		}
		if err := req.Reject(adminComment); err != nil {
			return errs.Mark(err, ErrRequestNotPending)
		}
		if updateErr := c.requests.Update(ctx, tx, req); updateErr != nil {
			return markStore(updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.requestQueries.GetByID(ctx, id)
}
