// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"clientes/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when no customer has the requested ID.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrDuplicateEmail is returned when the email is already taken by another customer.
	ErrDuplicateEmail = errors.New("customer email already exists")
)

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// FindAll returns every customer ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Customer, error)

	// FindPage returns one page of customers ordered by ID.
	FindPage(ctx context.Context, req entity.PageRequest) (*entity.Page[*entity.Customer], error)

	// FindByID retrieves a customer with its region.
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)

	// Save inserts the customer when ID is zero and replaces it otherwise.
	// Generated values are written back into customer.
	Save(ctx context.Context, customer *entity.Customer) error

	// Delete removes a customer by ID.
	Delete(ctx context.Context, id int64) error
}
