package user

import (
	"context"
	"time"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

type User struct {
	ID           uint
	PublicID     string
	Role         Role
	Name         string
	Email        string
	PasswordHash string
	StudentType  string
	School       string
	Class        string
	Enabled      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByPublicID(ctx context.Context, publicID string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}
