package works

// ---------- requests

type CreateArtworkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Watermarked *bool  `json:"watermarked"` // defaults to true
}
