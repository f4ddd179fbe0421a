package access

import "artivisual-app/internal/domain/users"

func DashboardFor(role users.Role) Dashboard {
	switch role {
	case users.RoleBuyer:
		return DashboardBuyer
	case users.RoleSeller:
		return DashboardSeller
	case users.RoleAdmin:
		return DashboardAdmin
	default:
		return DashboardNone
	}
}
