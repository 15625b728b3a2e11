package usecase

import (
	"context"
	"io"

	"clientes/internal/domain/entity"
	"clientes/internal/domain/service"
)

// DefaultPageSize is the number of customers returned per page.
const DefaultPageSize = 5

// PhotoUpload is a photo file received for a customer.
type PhotoUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// CustomerUsecase defines the interface for customer management use cases
type CustomerUsecase interface {
	// ListCustomers returns every customer
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)

	// ListCustomersPage returns the zero-based page of DefaultPageSize customers
	ListCustomersPage(ctx context.Context, page int) (*entity.Page[*entity.Customer], error)

	// GetCustomer retrieves a customer by ID
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)

	// CreateCustomer validates and persists a new customer
	CreateCustomer(ctx context.Context, input *entity.Customer) (*entity.Customer, error)

	// UpdateCustomer validates input and replaces the mutable fields of an existing customer
	UpdateCustomer(ctx context.Context, id int64, input *entity.Customer) (*entity.Customer, error)

	// DeleteCustomer removes a customer and, best effort, its photo
	DeleteCustomer(ctx context.Context, id int64) error

	// UploadPhoto stores a new photo for a customer and drops the previous one
	UploadPhoto(ctx context.Context, id int64, upload *PhotoUpload) (*entity.Customer, error)

	// LoadPhoto opens a stored photo by filename
	LoadPhoto(ctx context.Context, filename string) (*service.Resource, error)

	// ListRegions returns all regions
	ListRegions(ctx context.Context) ([]*entity.Region, error)
}
