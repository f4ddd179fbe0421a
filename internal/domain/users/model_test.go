package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole(" Seller ")
	assert.True(t, ok)
	assert.Equal(t, RoleSeller, r)

	_, ok = ParseRole("curator")
	assert.False(t, ok)
}

func TestUserValid(t *testing.T) {
	u := User{ID: "3", Email: "fan@example.com", Role: RoleBuyer}
	assert.True(t, u.Valid())

	assert.False(t, User{ID: "3", Email: "not-an-email", Role: RoleBuyer}.Valid())
	assert.False(t, User{ID: "3", Email: "fan@example.com", Role: "root"}.Valid())
	assert.False(t, User{Email: "fan@example.com", Role: RoleBuyer}.Valid())
}
