package queries

import (
	"context"
	"time"

	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/infra/db"
)

// Read model (DTO for read side)
type ChangeRequestView struct {
	ID               int64            `json:"id"`
	Kind             string           `json:"kind"`
	Status           string           `json:"status"`
	ProfessorID      int64            `json:"professor_id"`
	ProfessorName    string           `json:"professor_name"`
	ProfessorEmail   string           `json:"professor_email"`
	RoomID           int64            `json:"room_id"`
	RoomNumber       string           `json:"room_number"`
	ReservationID    int64            `json:"reservation_id"`
	Reservation      *ReservationView `json:"reservation"`
	StartDate        string           `json:"start_date"`
	EndDate          string           `json:"end_date"`
	Pattern          schedule.Pattern `json:"weekday_blocks"`
	ProfessorComment string           `json:"professor_comment,omitempty"`
	AdminComment     string           `json:"admin_comment,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

type ChangeRequestQueries interface {
	GetByID(ctx context.Context, id int64) (*ChangeRequestView, error)
	ListByStatus(ctx context.Context, status changerequest.Status) ([]*ChangeRequestView, error)
	ListByStatusAndProfessor(ctx context.Context, status changerequest.Status, professorID int64) ([]*ChangeRequestView, error)
}

type changeRequestQueriesImpl struct {
	requests     ChangeRequestReader
	users        UserReader
	rooms        RoomReader
	reservations ReservationQueries
	db           db.DBTX
}

func NewChangeRequestQueries(requests ChangeRequestReader, users UserReader, rooms RoomReader, reservations ReservationQueries, dbtx db.DBTX) ChangeRequestQueries {
	return &changeRequestQueriesImpl{
		requests:     requests,
		users:        users,
		rooms:        rooms,
		reservations: reservations,
		db:           dbtx,
	}
}

func (q *changeRequestQueriesImpl) GetByID(ctx context.Context, id int64) (*ChangeRequestView, error) {
	req, err := q.requests.FindByID(ctx, q.db, id)
	if err != nil {
		return nil, err
	}
	return q.hydrate(ctx, req)
}

func (q *changeRequestQueriesImpl) ListByStatus(ctx context.Context, status changerequest.Status) ([]*ChangeRequestView, error) {
	reqs, err := q.requests.FindByStatus(ctx, q.db, status)
	if err != nil {
		return nil, err
	}
	return q.hydrateAll(ctx, reqs)
}

func (q *changeRequestQueriesImpl) ListByStatusAndProfessor(ctx context.Context, status changerequest.Status, professorID int64) ([]*ChangeRequestView, error) {
	reqs, err := q.requests.FindByStatusAndProfessor(ctx, q.db, status, professorID)
	if err != nil {
		return nil, err
	}
	return q.hydrateAll(ctx, reqs)
}

func (q *changeRequestQueriesImpl) hydrateAll(ctx context.Context, reqs []*changerequest.ChangeRequest) ([]*ChangeRequestView, error) {
	out := make([]*ChangeRequestView, 0, len(reqs))
	for _, req := range reqs {
		view, err := q.hydrate(ctx, req)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (q *changeRequestQueriesImpl) hydrate(ctx context.Context, req *changerequest.ChangeRequest) (*ChangeRequestView, error) {
	professor, err := q.users.FindByID(ctx, q.db, req.ProfessorID())
	if err != nil {
		return nil, err
	}
	roomEntity, err := q.rooms.FindByID(ctx, q.db, req.RoomID())
	if err != nil {
		return nil, err
	}
	reservationView, err := q.reservations.GetByID(ctx, req.ReservationID())
	if err != nil {
		return nil, err
	}

	return &ChangeRequestView{
		ID:               req.ID(),
		Kind:             string(req.Kind()),
		Status:           string(req.Status()),
		ProfessorID:      professor.ID(),
		ProfessorName:    professor.Name(),
		ProfessorEmail:   professor.Email(),
		RoomID:           roomEntity.ID(),
		RoomNumber:       roomEntity.Number(),
		ReservationID:    req.ReservationID(),
		Reservation:      reservationView,
		StartDate:        formatDate(req.Dates().Start()),
		EndDate:          formatDate(req.Dates().End()),
		Pattern:          req.Pattern(),
		ProfessorComment: req.ProfessorComment(),
		AdminComment:     req.AdminComment(),
		CreatedAt:        req.CreatedAt(),
	}, nil
}
