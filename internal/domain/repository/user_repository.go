package repository

import (
	"context"

	"clientes/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the username is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the interface for user account operations.
type UserRepository interface {
	// FindByUsername retrieves a user together with its roles.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and its roles.
	Create(ctx context.Context, user *entity.User) error
}
