package works

import "time"

// Artwork is a single listing in the catalog.
type Artwork struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	SellerID    string    `json:"seller_id"`
	SellerName  string    `json:"seller_name"`
	Likes       int       `json:"likes"`
	Views       int       `json:"views"`
	IsLiked     bool      `json:"is_liked"`
	CreatedAt   time.Time `json:"created_at"`
	Watermarked bool      `json:"watermarked"`
}

// Draft is a seller upload: every Artwork field except the ones the catalog assigns.
// Social counters are not part of it; new listings always start at zero.
type Draft struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"gte=0"`
	Category    string `json:"category" validate:"required"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	SellerID    string `json:"seller_id" validate:"required"`
	SellerName  string `json:"seller_name" validate:"required"`
	Watermarked bool   `json:"watermarked"`
}

// CartItem is one line of the cart. Quantity is always >= 1.
type CartItem struct {
	Artwork  Artwork `json:"artwork"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity for the line.
func (ci CartItem) Subtotal() int64 {
	return ci.Artwork.Price * int64(ci.Quantity)
}
