package commands

import (
	"context"

	"campus-rooms/internal/infra"
	"campus-rooms/internal/pkg/errs"
	"campus-rooms/internal/pkg/jwt"
	"campus-rooms/internal/pkg/password"
	"campus-rooms/internal/usecase/shared"
)

var ErrInvalidCredentials = errs.New("invalid credentials")

type LoginResult struct {
	Token string `json:"token"`
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users UserRepository
	jwt   *jwt.Service
	uow   shared.UnitOfWork
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service, uow shared.UnitOfWork) AuthCommands {
	return &authCommandsImpl{users: users, jwt: jwtService, uow: uow}
}

// Login never reveals whether the email or the password was wrong.
func (c *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	account, err := c.users.FindByEmail(ctx, c.uow.DB(), email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, markStore(err)
	}

	if !password.Verify(account.PasswordHash(), plainPassword) {
		return nil, ErrInvalidCredentials
	}

	token, err := c.jwt.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return nil, errs.Wrap(err, "generate token")
	}

	return &LoginResult{
		Token: token,
		ID:    account.ID(),
		Name:  account.Name(),
		Email: account.Email(),
		Role:  account.Role().String(),
	}, nil
}
