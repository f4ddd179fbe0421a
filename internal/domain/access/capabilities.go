package access

import "artivisual-app/internal/domain/users"

// CapabilitiesFor returns what a role may do. Anonymous visitors only browse.
func CapabilitiesFor(role users.Role) []Capability {
	base := []Capability{CapLike, CapFavorite, CapCart}

	switch role {
	case users.RoleBuyer:
		return base
	case users.RoleSeller:
		return append(base, CapUpload)
	case users.RoleAdmin:
		return append(base, CapModerate)
	default:
		return []Capability{}
	}
}

func Can(role users.Role, c Capability) bool {
	for _, have := range CapabilitiesFor(role) {
		if have == c {
			return true
		}
	}
	return false
}
