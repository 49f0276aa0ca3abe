package repository

import (
	"context"
	"encoding/json"
	"time"

	"campus-rooms/internal/domain/changerequest"
	"campus-rooms/internal/domain/schedule"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
)

type ChangeRequestRepository struct{}

func NewChangeRequestRepository() *ChangeRequestRepository {
	return &ChangeRequestRepository{}
}

const changeRequestColumns = `id, professor_id, reservation_id, room_id, kind, status,
	start_date, end_date, weekday_blocks, professor_comment, admin_comment, created_at`

func (r *ChangeRequestRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*changerequest.ChangeRequest, error) {
	row := dbtx.QueryRow(ctx, "SELECT "+changeRequestColumns+" FROM change_requests WHERE id = $1", id)
	entity, err := scanChangeRequest(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("change request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find change request by ID", err)
	}
	return entity, nil
}

func (r *ChangeRequestRepository) FindByStatus(ctx context.Context, dbtx db.DBTX, status changerequest.Status) ([]*changerequest.ChangeRequest, error) {
	rows, err := dbtx.Query(ctx,
		"SELECT "+changeRequestColumns+" FROM change_requests WHERE status = $1 ORDER BY id", string(status))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list change requests by status", err)
	}
	defer rows.Close()
	return collectChangeRequests(rows)
}

func (r *ChangeRequestRepository) FindByStatusAndProfessor(ctx context.Context, dbtx db.DBTX, status changerequest.Status, professorID int64) ([]*changerequest.ChangeRequest, error) {
	rows, err := dbtx.Query(ctx,
		"SELECT "+changeRequestColumns+" FROM change_requests WHERE status = $1 AND professor_id = $2 ORDER BY id",
		string(status), professorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list change requests by status and professor", err)
	}
	defer rows.Close()
	return collectChangeRequests(rows)
}

// FindByReservationID serves duplicate detection on create.
func (r *ChangeRequestRepository) FindByReservationID(ctx context.Context, dbtx db.DBTX, reservationID int64) ([]*changerequest.ChangeRequest, error) {
	rows, err := dbtx.Query(ctx,
		"SELECT "+changeRequestColumns+" FROM change_requests WHERE reservation_id = $1 ORDER BY id", reservationID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list change requests by reservation", err)
	}
	defer rows.Close()
	return collectChangeRequests(rows)
}

func (r *ChangeRequestRepository) Save(ctx context.Context, dbtx db.DBTX, entity *changerequest.ChangeRequest) (int64, error) {
	patternJSON, err := json.Marshal(entity.Pattern())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to encode weekday blocks", err)
	}

	var id int64
	err = dbtx.QueryRow(ctx,
		`INSERT INTO change_requests
		   (professor_id, reservation_id, room_id, kind, status, start_date, end_date,
		    weekday_blocks, professor_comment, admin_comment, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		entity.ProfessorID(), entity.ReservationID(), entity.RoomID(),
		string(entity.Kind()), string(entity.Status()),
		entity.Dates().Start(), entity.Dates().End(), patternJSON,
		entity.ProfessorComment(), entity.AdminComment(), entity.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return 0, classifyWriteErr("failed to save change request", err)
	}
	return id, nil
}

func (r *ChangeRequestRepository) Update(ctx context.Context, dbtx db.DBTX, entity *changerequest.ChangeRequest) error {
	patternJSON, err := json.Marshal(entity.Pattern())
	if err != nil {
		return infra.WrapRepoErr("failed to encode weekday blocks", err)
	}

	tag, err := dbtx.Exec(ctx,
		`UPDATE change_requests SET status = $2, admin_comment = $3, room_id = $4, kind = $5,
		   start_date = $6, end_date = $7, weekday_blocks = $8, professor_comment = $9
		 WHERE id = $1`,
		entity.ID(), string(entity.Status()), entity.AdminComment(), entity.RoomID(),
		string(entity.Kind()), entity.Dates().Start(), entity.Dates().End(), patternJSON,
		entity.ProfessorComment(),
	)
	if err != nil {
		return classifyWriteErr("failed to update change request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("change request not found", nil, infra.KindNotFound)
	}
	return nil
}

func collectChangeRequests(rows reservationRows) ([]*changerequest.ChangeRequest, error) {
	var out []*changerequest.ChangeRequest
	for rows.Next() {
		entity, err := scanChangeRequest(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan change request", err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read change requests", err)
	}
	return out, nil
}

func scanChangeRequest(row rowScanner) (*changerequest.ChangeRequest, error) {
	var (
		id, professorID, reservationID, roomID int64
		kind, status                           string
		startDate, endDate, createdAt          time.Time
		patternJSON                            []byte
		professorComment, adminComment         string
	)
	if err := row.Scan(&id, &professorID, &reservationID, &roomID, &kind, &status,
		&startDate, &endDate, &patternJSON, &professorComment, &adminComment, &createdAt); err != nil {
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
	return changerequest.Reconstruct(id, professorID, reservationID, roomID,
		changerequest.Kind(kind), changerequest.Status(status), dates, pattern,
		professorComment, adminComment, createdAt), nil
}
