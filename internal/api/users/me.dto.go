package users

type MeResponse struct {
	User   UserDTO   `json:"user"`
	Access AccessDTO `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Bio        *string `json:"bio"`
	JoinedDate string  `json:"joined_date"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	Dashboard    string   `json:"dashboard"` // buyer|seller|admin
	Capabilities []string `json:"capabilities"`
}
