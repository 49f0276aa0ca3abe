package repository

import (
	"context"

	"campus-rooms/internal/domain/room"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

const roomColumns = "id, number, capacity, has_projector, has_tv, kind, computers"

func (r *RoomRepository) GetAll(ctx context.Context, dbtx db.DBTX) ([]*room.Room, error) {
	rows, err := dbtx.Query(ctx, "SELECT "+roomColumns+" FROM rooms ORDER BY id")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var out []*room.Room
	for rows.Next() {
		entity, scanErr := scanRoom(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan room", scanErr)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rooms", err)
	}
	return out, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*room.Room, error) {
	row := dbtx.QueryRow(ctx, "SELECT "+roomColumns+" FROM rooms WHERE id = $1", id)
	entity, err := scanRoom(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return entity, nil
}

func (r *RoomRepository) Save(ctx context.Context, dbtx db.DBTX, entity *room.Room) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx,
		`INSERT INTO rooms (number, capacity, has_projector, has_tv, kind, computers)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		entity.Number(), entity.Capacity(), entity.HasProjector(), entity.HasTV(),
		string(entity.Kind()), entity.Computers(),
	).Scan(&id)
	if err != nil {
		return 0, classifyWriteErr("failed to save room", err)
	}
	return id, nil
}

func (r *RoomRepository) Update(ctx context.Context, dbtx db.DBTX, entity *room.Room) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE rooms SET number = $2, capacity = $3, has_projector = $4, has_tv = $5, kind = $6, computers = $7
		 WHERE id = $1`,
		entity.ID(), entity.Number(), entity.Capacity(), entity.HasProjector(), entity.HasTV(),
		string(entity.Kind()), entity.Computers(),
	)
	if err != nil {
		return classifyWriteErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) DeleteByID(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, "DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return classifyWriteErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoom(row rowScanner) (*room.Room, error) {
	var (
		id           int64
		number       string
		capacity     int
		hasProjector bool
		hasTV        bool
		kind         string
		computers    int
	)
	if err := row.Scan(&id, &number, &capacity, &hasProjector, &hasTV, &kind, &computers); err != nil {
		return nil, err
	}
	return room.Reconstruct(id, number, capacity, hasProjector, hasTV, room.Kind(kind), computers), nil
}
