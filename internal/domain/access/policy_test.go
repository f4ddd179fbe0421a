package access

import (
	"testing"

	"artivisual-app/internal/domain/users"

	"github.com/stretchr/testify/assert"
)

func TestComputePolicy(t *testing.T) {
	tests := []struct {
		name      string
		user      *users.User
		dashboard Dashboard
		caps      []Capability
	}{
		{"anonymous", nil, DashboardNone, []Capability{}},
		{"buyer", &users.User{Role: users.RoleBuyer}, DashboardBuyer, []Capability{CapLike, CapFavorite, CapCart}},
		{"seller", &users.User{Role: users.RoleSeller}, DashboardSeller, []Capability{CapLike, CapFavorite, CapCart, CapUpload}},
		{"admin", &users.User{Role: users.RoleAdmin}, DashboardAdmin, []Capability{CapLike, CapFavorite, CapCart, CapModerate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ComputePolicy(tt.user)
			assert.Equal(t, tt.dashboard, p.Dashboard)
			assert.Equal(t, tt.caps, p.Capabilities)
		})
	}
}

func TestCan(t *testing.T) {
	assert.True(t, Can(users.RoleSeller, CapUpload))
	assert.False(t, Can(users.RoleBuyer, CapUpload))
	assert.False(t, Can(users.RoleSeller, CapModerate))
	assert.True(t, Can(users.RoleAdmin, CapModerate))
	assert.False(t, Can(users.Role("ghost"), CapLike))
}
