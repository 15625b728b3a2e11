package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"clientes/config"
	"clientes/internal/domain/entity"
	"clientes/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a migrated and seeded SQLite database. The repositories only
// use portable SQL, so it stands in for PostgreSQL here.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "clientes.db")), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db, config.MigrationConfig{
		AutoMigrate: true,
		SeedRegions: true,
	}))

	return db
}

func newCustomer(name, email string, regionID int64) *entity.Customer {
	createAt := entity.NewDate(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC))

	return &entity.Customer{
		FirstName: name,
		LastName:  "Lopez",
		Email:     email,
		CreateAt:  &createAt,
		Region:    &entity.Region{ID: regionID},
	}
}

func TestMigrate_SeedsRegionsOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db, config.MigrationConfig{AutoMigrate: true, SeedRegions: true}))

	regions, err := NewRegionRepository(db).FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, regions, len(DefaultRegions))
	assert.Equal(t, DefaultRegions[0], regions[0].Name)
	assert.Less(t, regions[0].ID, regions[1].ID)
}

func TestCustomerRepository_SaveCreatesAndReloadsRegion(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	customer := newCustomer("Ana", "ana@x.com", 2)
	require.NoError(t, repo.Save(ctx, customer))

	require.Positive(t, customer.ID)
	require.NotNil(t, customer.Region)
	assert.Equal(t, DefaultRegions[1], customer.Region.Name)

	found, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", found.FirstName)
	assert.Equal(t, "ana@x.com", found.Email)
	assert.Equal(t, "2024-03-09", found.CreateAt.Format(entity.DateLayout))
	assert.Equal(t, int64(2), found.Region.ID)
}

func TestCustomerRepository_SaveUpdatesExisting(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	customer := newCustomer("Ana", "ana@x.com", 1)
	require.NoError(t, repo.Save(ctx, customer))

	customer.FirstName = "Ana María"
	customer.Region = nil
	customer.Photo = "uuid_foto.png"
	require.NoError(t, repo.Save(ctx, customer))

	found, err := repo.FindByID(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", found.FirstName)
	assert.Nil(t, found.Region)
	assert.Equal(t, "uuid_foto.png", found.Photo)
}

func TestCustomerRepository_SaveUnknownID(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))

	customer := newCustomer("Ana", "ana@x.com", 1)
	customer.ID = 999

	err := repo.Save(context.Background(), customer)
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
}

func TestCustomerRepository_SaveDuplicateEmail(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newCustomer("Ana", "ana@x.com", 1)))

	err := repo.Save(ctx, newCustomer("Otra", "ana@x.com", 1))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCustomerRepository_FindPage(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com", "e@x.com", "f@x.com", "g@x.com"} {
		require.NoError(t, repo.Save(ctx, newCustomer("Cliente", email, 1)))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 7)

	first, err := repo.FindPage(ctx, entity.PageRequest{Number: 0, Size: 5})
	require.NoError(t, err)
	assert.Len(t, first.Content, 5)
	assert.Equal(t, int64(7), first.TotalElements)
	assert.Equal(t, 2, first.TotalPages)
	assert.True(t, first.First)
	assert.False(t, first.Last)

	second, err := repo.FindPage(ctx, entity.PageRequest{Number: 1, Size: 5})
	require.NoError(t, err)
	assert.Len(t, second.Content, 2)
	assert.True(t, second.Last)
	assert.Equal(t, all, append(first.Content, second.Content...))
	assert.Equal(t, DefaultRegions[0], second.Content[0].Region.Name)

	beyond, err := repo.FindPage(ctx, entity.PageRequest{Number: 2, Size: 5})
	require.NoError(t, err)
	assert.True(t, beyond.Empty)
}

func TestCustomerRepository_Delete(t *testing.T) {
	repo := NewCustomerRepository(newTestDB(t))
	ctx := context.Background()

	customer := newCustomer("Ana", "ana@x.com", 1)
	require.NoError(t, repo.Save(ctx, customer))

	require.NoError(t, repo.Delete(ctx, customer.ID))

	_, err := repo.FindByID(ctx, customer.ID)
	assert.ErrorIs(t, err, repository.ErrCustomerNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, customer.ID), repository.ErrCustomerNotFound)
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	admin := &entity.User{
		Username:     "admin",
		PasswordHash: "$2a$10$hash",
		Enabled:      true,
		Roles:        entity.Roles{entity.RoleAdmin, entity.RoleUser},
	}
	require.NoError(t, repo.Create(ctx, admin))
	assert.Positive(t, admin.ID)

	// Roles created for the first user are reused by the second.
	require.NoError(t, repo.Create(ctx, &entity.User{
		Username:     "andres",
		PasswordHash: "$2a$10$hash",
		Enabled:      true,
		Roles:        entity.Roles{entity.RoleUser},
	}))

	found, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, found.Enabled)
	assert.ElementsMatch(t, entity.Roles{entity.RoleAdmin, entity.RoleUser}, found.Roles)

	err = repo.Create(ctx, &entity.User{Username: "admin", PasswordHash: "x", Enabled: true})
	assert.ErrorIs(t, err, repository.ErrUserAlreadyExists)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
