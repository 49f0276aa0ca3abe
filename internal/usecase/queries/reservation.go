package queries

import (
	"context"
	"time"

	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/infra/db"
)

const dateLayout = "2006-01-02"

// Read model (DTO for read side)
type ReservationView struct {
	ID           int64            `json:"id"`
	RoomID       int64            `json:"room_id"`
	RoomNumber   string           `json:"room_number"`
	SectionID    int64            `json:"section_id"`
	SectionLabel string           `json:"section_label"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	Pattern      schedule.Pattern `json:"weekday_blocks"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	List(ctx context.Context) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReader
	rooms        RoomReader
	sections     SectionReader
	db           db.DBTX
}

func NewReservationQueries(reservations ReservationReader, rooms RoomReader, sections SectionReader, dbtx db.DBTX) ReservationQueries {
	return &reservationQueriesImpl{
		reservations: reservations,
		rooms:        rooms,
		sections:     sections,
		db:           dbtx,
	}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	res, err := q.reservations.FindByID(ctx, q.db, id)
	if err != nil {
		return nil, err
	}
	return q.hydrate(ctx, res)
}

func (q *reservationQueriesImpl) List(ctx context.Context) ([]*ReservationView, error) {
	all, err := q.reservations.GetAll(ctx, q.db)
	if err != nil {
		return nil, err
	}

	out := make([]*ReservationView, 0, len(all))
	for _, res := range all {
		view, err := q.hydrate(ctx, res)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

// hydrate resolves the referenced room and section; records store only bare
// identifiers, never embedded copies.
func (q *reservationQueriesImpl) hydrate(ctx context.Context, res *reservation.Reservation) (*ReservationView, error) {
	roomEntity, err := q.rooms.FindByID(ctx, q.db, res.RoomID())
	if err != nil {
		return nil, err
	}
	sectionEntity, err := q.sections.FindByID(ctx, q.db, res.SectionID())
	if err != nil {
		return nil, err
	}

	return &ReservationView{
		ID:           res.ID(),
		RoomID:       roomEntity.ID(),
		RoomNumber:   roomEntity.Number(),
		SectionID:    sectionEntity.ID(),
		SectionLabel: sectionEntity.Label(),
		StartDate:    formatDate(res.Dates().Start()),
		EndDate:      formatDate(res.Dates().End()),
		Pattern:      res.Pattern(),
	}, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
