package repository

import (
	"context"
	"encoding/json"
	"time"

	"campus-rooms/internal/domain/reservation"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const reservationColumns = "id, room_id, section_id, start_date, end_date, weekday_blocks"

func (r *ReservationRepository) GetAll(ctx context.Context, dbtx db.DBTX) ([]*reservation.Reservation, error) {
	rows, err := dbtx.Query(ctx, "SELECT "+reservationColumns+" FROM reservations ORDER BY id")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()
	return collectReservations(rows)
}

// FindByRoomIDs restricts the scan to reservations in the given rooms; the
// availability engine uses it so a candidate pool never loads the whole table.
func (r *ReservationRepository) FindByRoomIDs(ctx context.Context, dbtx db.DBTX, roomIDs []int64) ([]*reservation.Reservation, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	rows, err := dbtx.Query(ctx,
		"SELECT "+reservationColumns+" FROM reservations WHERE room_id = ANY($1) ORDER BY id", roomIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by rooms", err)
	}
	defer rows.Close()
	return collectReservations(rows)
}

func (r *ReservationRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*reservation.Reservation, error) {
	row := dbtx.QueryRow(ctx, "SELECT "+reservationColumns+" FROM reservations WHERE id = $1", id)
	entity, err := scanReservation(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return entity, nil
}

func (r *ReservationRepository) Save(ctx context.Context, dbtx db.DBTX, entity *reservation.Reservation) (int64, error) {
	patternJSON, err := json.Marshal(entity.Pattern())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode weekday blocks", err)
	}

	var id int64
	err = dbtx.QueryRow(ctx,
		`INSERT INTO reservations (room_id, section_id, start_date, end_date, weekday_blocks)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		entity.RoomID(), entity.SectionID(), entity.Dates().Start(), entity.Dates().End(), patternJSON,
	).Scan(&id)
	if err != nil {
		return 0, classifyWriteErr("failed to save reservation", err)
	}
	return id, nil
}

// Update replaces the whole record; a reservation is never partially updated.
func (r *ReservationRepository) Update(ctx context.Context, dbtx db.DBTX, entity *reservation.Reservation) error {
	patternJSON, err := json.Marshal(entity.Pattern())
	if err != nil {
		return infra.WrapRepoErr("failed to encode weekday blocks", err)
	}

	tag, err := dbtx.Exec(ctx,
		`UPDATE reservations SET room_id = $2, section_id = $3, start_date = $4, end_date = $5, weekday_blocks = $6
		 WHERE id = $1`,
		entity.ID(), entity.RoomID(), entity.SectionID(), entity.Dates().Start(), entity.Dates().End(), patternJSON,
	)
	if err != nil {
		return classifyWriteErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) DeleteByID(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, "DELETE FROM reservations WHERE id = $1", id)
	if err != nil {
		return classifyWriteErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// ExistsByRoomID backs the room-deletion guard.
func (r *ReservationRepository) ExistsByRoomID(ctx context.Context, dbtx db.DBTX, roomID int64) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM reservations WHERE room_id = $1)", roomID,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservations for room", err)
	}
	return exists, nil
}

type reservationRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func collectReservations(rows reservationRows) ([]*reservation.Reservation, error) {
	var out []*reservation.Reservation
	for rows.Next() {
		entity, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	return out, nil
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id, roomID, sectionID int64
		startDate, endDate    time.Time
		patternJSON           []byte
	)
	if err := row.Scan(&id, &roomID, &sectionID, &startDate, &endDate, &patternJSON); err != nil {
		return nil, err
	}

	var pattern schedule.Pattern
	if err := json.Unmarshal(patternJSON, &pattern); err != nil {
		return nil, err
	}
	dates, err := schedule.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return reservation.Reconstruct(id, roomID, sectionID, dates, pattern), nil
}
