package access

import "artivisual-app/internal/domain/users"

type Policy struct {
	Dashboard    Dashboard
	Capabilities []Capability
}

// ComputePolicy resolves what the current session may reach. A nil user is anonymous.
func ComputePolicy(u *users.User) Policy {
	if u == nil {
		return Policy{Dashboard: DashboardNone, Capabilities: []Capability{}}
	}

	return Policy{
		Dashboard:    DashboardFor(u.Role),
		Capabilities: CapabilitiesFor(u.Role),
	}
}
