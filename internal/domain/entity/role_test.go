package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolesFromStrings(t *testing.T) {
	roles := RolesFromStrings([]string{"ADMIN", "ROLE_USER", "merchant", "user"})

	assert.Equal(t, Roles{RoleAdmin, RoleUser, RoleUser}, roles)
}

func TestRoles_ContainsAny(t *testing.T) {
	roles := Roles{RoleUser}

	assert.True(t, roles.ContainsAny(RoleAdmin, RoleUser))
	assert.False(t, roles.ContainsAny(RoleAdmin))
	assert.False(t, Roles(nil).ContainsAny(RoleAdmin, RoleUser))
}
