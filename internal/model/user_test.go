package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole("regular")
	assert.NoError(t, err)
	assert.Equal(t, RoleRegular, role)

	_, err = ParseRole("superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleRegular.Valid())
	assert.False(t, Role("moderator").Valid())
}
