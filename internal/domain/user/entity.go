package user

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidRole  = errors.New("invalid role")
)

type Role string

const (
	RoleProfessor Role = "professor"
	RoleAdmin     Role = "admin"
)

func NewRole(value string) (Role, error) {
	r := Role(value)
	switch r {
	case RoleProfessor, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	id           int64
	email        string
	name         string
	passwordHash string
	role         Role
}

func NewUser(email, name, passwordHash string, role Role) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if _, err := NewRole(role.String()); err != nil {
		return nil, err
	}
	return &User{
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func Reconstruct(id int64, email, name, passwordHash string, role Role) *User {
	return &User{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		role:         role,
	}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Email() string        { return u.email }
func (u *User) Name() string         { return u.name }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}
