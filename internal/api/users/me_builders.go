package users

import (
	"artivisual-app/internal/domain/access"
	"artivisual-app/internal/domain/users"
)

func BuildUserDTO(u users.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		Bio:        stringPtrIfNotEmpty(u.Bio),
		JoinedDate: u.JoinedDate,
	}
}

func BuildAccessDTO(p access.Policy) AccessDTO {
	caps := make([]string, 0, len(p.Capabilities))
	for _, c := range p.Capabilities {
		caps = append(caps, string(c))
	}
	return AccessDTO{
		Dashboard:    string(p.Dashboard),
		Capabilities: caps,
	}
}

func BuildMeResponse(u users.User) MeResponse {
	return MeResponse{
		User:   BuildUserDTO(u),
		Access: BuildAccessDTO(access.ComputePolicy(&u)),
	}
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
