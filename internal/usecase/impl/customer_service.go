// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"

	"clientes/internal/domain/entity"
	domainerrors "clientes/internal/domain/errors"
	"clientes/internal/domain/repository"
	"clientes/internal/domain/service"
	"clientes/internal/domain/validation"
	"clientes/internal/errors"
	logs "clientes/internal/infra/log"
	"clientes/internal/usecase"

	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

// Messages returned to clients when the store fails.
const (
	msgQueryFailed  = "Error al realizar la consulta en la base de datos!"
	msgInsertFailed = "Error al realizar el insert en la base de datos!"
	msgUpdateFailed = "Error al actualizar el cliente en la base de datos!"
	msgDeleteFailed = "Error al eliminar el cliente de la base de datos!"
	msgUploadFailed = "Error al subir la imagen del cliente"
	msgLoadFailed   = "Error al cargar la imagen"

	msgCustomerNotFound   = "El cliente ID: %d no existe en la base de datos!"
	msgUpdateNotFound     = "Error: no se pudo editar, el cliente ID: %d no existe en la base de datos!"
	msgInvalidPageNumber  = "El número de página no es válido"
	msgPhotoNameNotFound  = "La imagen %s no existe"
	msgCustomerIDRequired = "El id del cliente es obligatorio"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	customerRepo repository.CustomerRepository
	regionRepo   repository.RegionRepository
	storage      service.FileStorage
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	RegionRepo   repository.RegionRepository
	Storage      service.FileStorage
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		regionRepo:   params.RegionRepo,
		storage:      params.Storage,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// ListCustomers returns every customer ordered by ID.
func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, msgQueryFailed)
	}

	return customers, nil
}

// ListCustomersPage returns the zero-based page of DefaultPageSize customers.
func (srv *customerService) ListCustomersPage(ctx context.Context, page int) (*entity.Page[*entity.Customer], error) {
	// Larger pages would overflow the row offset.
	if page < 0 || page > math.MaxInt/usecase.DefaultPageSize {
		return nil, domainerrors.ErrInvalidParameter.WithMessage(msgInvalidPageNumber)
	}

	result, err := srv.customerRepo.FindPage(ctx, entity.PageRequest{Number: page, Size: usecase.DefaultPageSize})
	if err != nil {
		return nil, domainerrors.NewStoreError(err, msgQueryFailed)
	}

	return result, nil
}

// GetCustomer retrieves a customer by ID.
func (srv *customerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithMessage(msgCustomerNotFound, id)
		}

		return nil, domainerrors.NewStoreError(err, msgQueryFailed)
	}

	return customer, nil
}

// CreateCustomer validates and persists a new customer. The ID and photo of input are ignored.
func (srv *customerService) CreateCustomer(ctx context.Context, input *entity.Customer) (*entity.Customer, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	customer := &entity.Customer{}
	customer.ApplyUpdate(input)
	if customer.CreateAt == nil {
		today := entity.Today()
		customer.CreateAt = &today
	}

	if err := srv.customerRepo.Save(ctx, customer); err != nil {
		return nil, domainerrors.NewStoreError(err, msgInsertFailed)
	}

	srv.log(ctx).Info("Customer created", slog.Int64("customerID", customer.ID))

	return customer, nil
}

// UpdateCustomer replaces nombre, apellido, email, createAt and region of an existing customer.
func (srv *customerService) UpdateCustomer(ctx context.Context, id int64, input *entity.Customer) (*entity.Customer, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	current, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithMessage(msgUpdateNotFound, id)
		}

		return nil, domainerrors.NewStoreError(err, msgUpdateFailed)
	}

	current.ApplyUpdate(input)

	if err := srv.customerRepo.Save(ctx, current); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithMessage(msgUpdateNotFound, id)
		}

		return nil, domainerrors.NewStoreError(err, msgUpdateFailed)
	}

	srv.log(ctx).Info("Customer updated", slog.Int64("customerID", id))

	return current, nil
}

// DeleteCustomer removes the customer record and then, best effort, its photo.
func (srv *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound.WithMessage(msgCustomerNotFound, id)
		}

		return domainerrors.NewStoreError(err, msgDeleteFailed)
	}

	if err := srv.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound.WithMessage(msgCustomerNotFound, id)
		}

		return domainerrors.NewStoreError(err, msgDeleteFailed)
	}

	if customer.HasPhoto() && !srv.storage.Delete(ctx, customer.Photo) {
		srv.log(ctx).Warn("Photo of deleted customer was not removed",
			slog.Int64("customerID", id),
			slog.String("photo", customer.Photo),
		)
	}

	srv.log(ctx).Info("Customer deleted", slog.Int64("customerID", id))

	return nil
}

// UploadPhoto stores the new photo, saves the customer and then drops the previous photo.
// A failed copy or save leaves the customer and its previous photo untouched.
func (srv *customerService) UploadPhoto(ctx context.Context, id int64, upload *usecase.PhotoUpload) (*entity.Customer, error) {
	if id <= 0 {
		return nil, domainerrors.ErrInvalidParameter.WithMessage(msgCustomerIDRequired)
	}

	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithMessage(msgCustomerNotFound, id)
		}

		return nil, domainerrors.NewStoreError(err, msgQueryFailed)
	}

	name, err := srv.storage.Copy(ctx, upload.Filename, upload.Content)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, msgUploadFailed+" "+upload.Filename)
	}

	srv.log(ctx).Info("Photo uploaded",
		slog.Int64("customerID", id),
		slog.String("photo", name),
		slog.String("size", bytes.Format(upload.Size)),
	)

	previous := customer.Photo
	customer.Photo = name
	if err := srv.customerRepo.Save(ctx, customer); err != nil {
		if !srv.storage.Delete(ctx, name) {
			srv.log(ctx).Warn("Uploaded photo was not rolled back", slog.String("photo", name))
		}
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithMessage(msgCustomerNotFound, id)
		}

		return nil, domainerrors.NewStoreError(err, msgUpdateFailed)
	}

	if previous != "" && !srv.storage.Delete(ctx, previous) {
		srv.log(ctx).Warn("Previous photo was not removed", slog.String("photo", previous))
	}

	return customer, nil
}

// LoadPhoto opens a stored photo by filename.
func (srv *customerService) LoadPhoto(ctx context.Context, filename string) (*service.Resource, error) {
	resource, err := srv.storage.Load(ctx, filename)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			return nil, domainerrors.ErrPhotoNotFound.WithMessage(msgPhotoNameNotFound, filename)
		}

		return nil, domainerrors.NewStoreError(err, msgLoadFailed)
	}

	return resource, nil
}

// ListRegions returns all regions.
func (srv *customerService) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	regions, err := srv.regionRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, msgQueryFailed)
	}

	return regions, nil
}

func validate(input *entity.Customer) error {
	if input == nil {
		return domainerrors.ErrInvalidParameter.WithMessage("El cliente es obligatorio")
	}

	if fields := validation.Struct(input); len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}
