package postgres

import (
	"testing"
	"time"

	"clientes/internal/domain/entity"
	"clientes/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerMapping_RoundTrip(t *testing.T) {
	createAt := entity.NewDate(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC))
	customer := &entity.Customer{
		ID:        7,
		FirstName: "Ana",
		LastName:  "Lopez",
		Email:     "ana@x.com",
		CreateAt:  &createAt,
		Region:    &entity.Region{ID: 3, Name: "Norteamérica"},
		Photo:     "abc_foto.png",
	}

	row := fromCustomerDomain(customer)
	require.NotNil(t, row.RegionID)
	assert.Equal(t, int64(3), *row.RegionID)
	assert.Nil(t, row.Region)

	row.Region = &model.RegionModel{ID: 3, Name: "Norteamérica"}
	assert.Equal(t, customer, toCustomerDomain(row))
}

func TestFromCustomerDomain_Defaults(t *testing.T) {
	row := fromCustomerDomain(&entity.Customer{FirstName: "Ana", Region: &entity.Region{}})

	assert.Nil(t, row.RegionID)
	assert.Equal(t, entity.Today().Time, row.CreateAt)
}

func TestToUserDomain_FiltersUnknownRoles(t *testing.T) {
	user := toUserDomain(&model.UserModel{
		ID:       1,
		Username: "admin",
		Password: "hash",
		Enabled:  true,
		Roles:    []model.RoleModel{{Name: "ROLE_ADMIN"}, {Name: "USER"}, {Name: "GUEST"}},
	})

	assert.Equal(t, entity.Roles{entity.RoleAdmin, entity.RoleUser}, user.Roles)
	assert.Equal(t, "hash", user.PasswordHash)
	assert.Nil(t, toUserDomain(nil))
}
