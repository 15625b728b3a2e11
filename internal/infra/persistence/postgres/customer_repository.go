// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"clientes/internal/domain/entity"
	"clientes/internal/domain/repository"
	"clientes/internal/errors"
	"clientes/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const customerOrder = "id ASC"

// customerRepository implements the repository.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindAll returns every customer ordered by ID. Reads may be served by a replica.
func (repo *customerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	var rows []*model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Region").
		Order(customerOrder).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return toCustomerDomainList(rows), nil
}

// FindPage returns one page of customers ordered by ID.
func (repo *customerRepository) FindPage(ctx context.Context, req entity.PageRequest) (*entity.Page[*entity.Customer], error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.CustomerModel{}).
		Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	var rows []*model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Region").
		Order(customerOrder).
		Offset(req.Offset()).
		Limit(req.Size).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list customers page %d", req.Number)
	}

	return entity.NewPage(toCustomerDomainList(rows), req, total), nil
}

// FindByID retrieves a single customer with its region.
func (repo *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var row model.CustomerModel
	err := repo.db.WithContext(ctx).
		Preload("Region").
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrapf(err, "failed to find customer %d", id)
	}

	return toCustomerDomain(&row), nil
}

// Save inserts the customer when its ID is zero and updates every column otherwise.
// The region association is only referenced by key, never written.
func (repo *customerRepository) Save(ctx context.Context, customer *entity.Customer) error {
	row := fromCustomerDomain(customer)
	db := repo.db.WithContext(ctx).Omit(clause.Associations)

	var err error
	if row.ID == 0 {
		err = db.Create(row).Error
	} else {
		result := db.Model(row).Select("*").Updates(row)
		err = result.Error
		if err == nil && result.RowsAffected == 0 {
			return repository.ErrCustomerNotFound
		}
	}
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return newConstraintError(repository.ErrDuplicateEmail, err)
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "region does not exist")
		}

		return errors.Wrap(err, "failed to save customer")
	}

	saved, err := repo.FindByID(ctx, row.ID)
	if err != nil {
		return err
	}
	*customer = *saved

	return nil
}

// Delete removes a customer by ID.
func (repo *customerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.CustomerModel{}, id)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to delete customer %d", id)
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func toCustomerDomainList(rows []*model.CustomerModel) []*entity.Customer {
	customers := make([]*entity.Customer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, toCustomerDomain(row))
	}

	return customers
}

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	createAt := entity.NewDate(data.CreateAt)

	return &entity.Customer{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		CreateAt:  &createAt,
		Region:    toRegionDomain(data.Region),
		Photo:     data.Photo,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
// A missing creation date becomes today.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	createAt := entity.Today()
	if data.CreateAt != nil {
		createAt = *data.CreateAt
	}

	var regionID *int64
	if data.Region != nil && data.Region.ID != 0 {
		id := data.Region.ID
		regionID = &id
	}

	return &model.CustomerModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		CreateAt:  createAt.Time,
		RegionID:  regionID,
		Photo:     data.Photo,
	}
}
