package repository

import (
	"context"

	"campus-rooms/internal/domain/section"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
)

type SubjectRepository struct{}

func NewSubjectRepository() *SubjectRepository {
	return &SubjectRepository{}
}

func (r *SubjectRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*section.Subject, error) {
	row := dbtx.QueryRow(ctx, "SELECT id, name, requires_lab FROM subjects WHERE id = $1", id)

	var (
		subjectID   int64
		name        string
		requiresLab bool
	)
	if err := row.Scan(&subjectID, &name, &requiresLab); err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("subject not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subject by ID", err)
	}
	return section.ReconstructSubject(subjectID, name, requiresLab), nil
}

func (r *SubjectRepository) GetAll(ctx context.Context, dbtx db.DBTX) ([]*section.Subject, error) {
	rows, err := dbtx.Query(ctx, "SELECT id, name, requires_lab FROM subjects ORDER BY id")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subjects", err)
	}
	defer rows.Close()

	var out []*section.Subject
	for rows.Next() {
		var (
			id          int64
			name        string
			requiresLab bool
		)
		if err := rows.Scan(&id, &name, &requiresLab); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subject", err)
		}
		out = append(out, section.ReconstructSubject(id, name, requiresLab))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read subjects", err)
	}
	return out, nil
}
