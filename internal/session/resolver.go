package session

import (
	"context"
	"strings"

	"artivisual-app/internal/domain/users"
)

// DefaultAdminEmail is the reserved address that logs in as the administrator.
const DefaultAdminEmail = "admin@artivisual.com"

// Resolver turns submitted credentials into an identity. Login only talks to this,
// so the mock heuristic can be swapped for a real credential check.
type Resolver interface {
	Resolve(ctx context.Context, email, password string) (users.User, error)
}

// MockResolver derives a canned identity from the email alone; the password is ignored.
//   - the reserved admin address yields the admin account
//   - any address containing "seller" yields the seller account
//   - everything else yields the buyer account
type MockResolver struct {
	AdminEmail string
}

func (m MockResolver) Resolve(_ context.Context, email, _ string) (users.User, error) {
	admin := m.AdminEmail
	if admin == "" {
		admin = DefaultAdminEmail
	}

	switch {
	case email == admin:
		return users.User{
			ID:         "1",
			Email:      email,
			Name:       "Admin User",
			Role:       users.RoleAdmin,
			JoinedDate: "2024-01-01",
		}, nil
	case strings.Contains(email, "seller"):
		return users.User{
			ID:         "2",
			Email:      email,
			Name:       "Artist Creator",
			Role:       users.RoleSeller,
			Bio:        "Digital artist specializing in contemporary art",
			JoinedDate: "2024-02-15",
		}, nil
	default:
		return users.User{
			ID:         "3",
			Email:      email,
			Name:       "Art Enthusiast",
			Role:       users.RoleBuyer,
			JoinedDate: "2024-03-10",
		}, nil
	}
}
