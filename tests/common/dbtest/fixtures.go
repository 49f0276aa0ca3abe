package dbtest

import (
	"context"
	"time"

	"campus-rooms/internal/pkg/password"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestPassword is the plaintext every seeded account logs in with.
const TestPassword = "password123"

// ResetDB truncates every table so each subtest starts from a blank schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE change_requests, reservations, sections, subjects, rooms, users
		RESTART IDENTITY CASCADE
	`)
	return err
}

func CreateUser(ctx context.Context, pool *pgxpool.Pool, email, name, role string) (int64, error) {
	hash, err := password.Hash(TestPassword)
	if err != nil {
		return 0, err
	}

	var id int64
	err = pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id`,
		email, name, hash, role,
	).Scan(&id)
	return id, err
}

func CreateRoom(ctx context.Context, pool *pgxpool.Pool, number string, capacity int, kind string, computers int) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO rooms (number, capacity, kind, computers) VALUES ($1, $2, $3, $4) RETURNING id`,
		number, capacity, kind, computers,
	).Scan(&id)
	return id, err
}

func CreateSubject(ctx context.Context, pool *pgxpool.Pool, name string, requiresLab bool) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO subjects (name, requires_lab) VALUES ($1, $2) RETURNING id`,
		name, requiresLab,
	).Scan(&id)
	return id, err
}

func CreateSection(ctx context.Context, pool *pgxpool.Pool, subjectID int64, label string, professorID int64, expected, margin int, enrollmentCloseAt time.Time) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx,
		`INSERT INTO sections (subject_id, label, professor_id, expected, margin, enrollment_close_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		subjectID, label, professorID, expected, margin, enrollmentCloseAt,
	).Scan(&id)
	return id, err
}
