package access

type Dashboard string

const (
	DashboardNone   Dashboard = "none"
	DashboardBuyer  Dashboard = "buyer"
	DashboardSeller Dashboard = "seller"
	DashboardAdmin  Dashboard = "admin"
)

type Capability string

const (
	CapLike     Capability = "like"
	CapFavorite Capability = "favorite"
	CapCart     Capability = "cart"
	CapUpload   Capability = "upload"
	CapModerate Capability = "moderate"
)
