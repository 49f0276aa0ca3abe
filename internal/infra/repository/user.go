package repository

import (
	"context"

	"campus-rooms/internal/domain/user"
	"campus-rooms/internal/infra"
	"campus-rooms/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const userColumns = "id, email, name, password_hash, role"

func (r *UserRepository) FindByID(ctx context.Context, dbtx db.DBTX, id int64) (*user.User, error) {
	row := dbtx.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	entity, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return entity, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, dbtx db.DBTX, email string) (*user.User, error) {
	row := dbtx.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
	entity, err := scanUser(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return entity, nil
}

func (r *UserRepository) Save(ctx context.Context, dbtx db.DBTX, entity *user.User) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, role)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		entity.Email(), entity.Name(), entity.PasswordHash(), entity.Role().String(),
	).Scan(&id)
	if err != nil {
		return 0, classifyWriteErr("failed to save user", err)
	}
	return id, nil
}

func scanUser(row rowScanner) (*user.User, error) {
	var (
		id                              int64
		email, name, passwordHash, role string
	)
	if err := row.Scan(&id, &email, &name, &passwordHash, &role); err != nil {
		return nil, err
	}
	return user.Reconstruct(id, email, name, passwordHash, user.Role(role)), nil
}
