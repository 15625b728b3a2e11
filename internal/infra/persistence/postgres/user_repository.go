package postgres

import (
	"context"

	"clientes/internal/domain/entity"
	"clientes/internal/domain/repository"
	"clientes/internal/errors"
	"clientes/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByUsername retrieves a single user with its roles.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var row model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Roles").
		Where("username = ?", username).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&row), nil
}

// Create persists a new user. Role rows are created on demand and linked
// through usuarios_roles.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	db := repo.db.WithContext(ctx)

	roles, err := repo.ensureRoles(db, user.Roles)
	if err != nil {
		return err
	}

	row := fromUserDomain(user)
	row.Roles = roles

	if err := db.Omit("Roles.*").Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return newConstraintError(repository.ErrUserAlreadyExists, err)
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = row.ID

	return nil
}

func (repo *userRepository) ensureRoles(db *gorm.DB, roles entity.Roles) ([]model.RoleModel, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	names := roles.ToStrings()
	wanted := make([]model.RoleModel, 0, len(names))
	for _, name := range names {
		wanted = append(wanted, model.RoleModel{Name: name})
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nombre"}},
		DoNothing: true,
	}).Create(&wanted).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create roles")
	}

	var stored []model.RoleModel
	if err := db.Where("nombre IN ?", names).Order("id ASC").Find(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load roles")
	}

	return stored, nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	names := make([]string, 0, len(data.Roles))
	for _, role := range data.Roles {
		names = append(names, role.Name)
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.Password,
		Enabled:      data.Enabled,
		Roles:        entity.RolesFromStrings(names),
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel without roles.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:       data.ID,
		Username: data.Username,
		Password: data.PasswordHash,
		Enabled:  data.Enabled,
	}
}
