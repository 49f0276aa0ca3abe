package repository

import (
	"context"
	"time"

	"campus-rooms/internal/domain/section"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
)

type SectionRepository struct{}

func NewSectionRepository() *SectionRepository {
	return &SectionRepository{}
}

const sectionColumns = "id, subject_id, label, professor_id, expected, margin, enrollment_close_at"

func (r *SectionRepository) GetAll(ctx context.Context, dbtx db.DBTX) ([]*section.Section, error) {
	rows, err := dbtx.Query(ctx, "SELECT "+sectionColumns+" FROM sections ORDER BY id")
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sections", err)
	}
	defer rows.Close()

	var out []*section.Section
	for rows.Next() {
		entity, scanErr := scanSection(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan section", scanErr)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sections", err)
	}
	return out, nil
}

func (r *SectionRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*section.Section, error) {
	row := dbtx.QueryRow(ctx, "SELECT "+sectionColumns+" FROM sections WHERE id = $1", id)
	entity, err := scanSection(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("section not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find section by ID", err)
	}
	return entity, nil
}

func (r *SectionRepository) Save(ctx context.Context, dbtx db.DBTX, entity *section.Section) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx,
		`INSERT INTO sections (subject_id, label, professor_id, expected, margin, enrollment_close_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		entity.SubjectID(), entity.Label(), entity.ProfessorID(),
		entity.Expected(), entity.Margin(), entity.EnrollmentCloseAt(),
	).Scan(&id)
	if err != nil {
		return 0, classifyWriteErr("failed to save section", err)
	}
	return id, nil
}

func scanSection(row rowScanner) (*section.Section, error) {
	var (
		id, subjectID, professorID int64
		label                      string
		expected, margin           int
		enrollmentCloseAt          time.Time
	)
	if err := row.Scan(&id, &subjectID, &label, &professorID, &expected, &margin, &enrollmentCloseAt); err != nil {
		return nil, err
	}
	return section.Reconstruct(id, subjectID, label, professorID, expected, margin, enrollmentCloseAt), nil
}
