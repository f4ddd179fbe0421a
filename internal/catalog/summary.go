package catalog

import (
	"math"

	"artivisual-app/internal/domain/works"
)

// ServiceFeeRate is charged on the cart subtotal at checkout.
const ServiceFeeRate = 0.03

type Summary struct {
	Lines      int   `json:"lines"`
	Units      int   `json:"units"`
	Subtotal   int64 `json:"subtotal"`
	ServiceFee int64 `json:"service_fee"`
	Total      int64 `json:"total"`
}

func Summarize(items []works.CartItem) Summary {
	var s Summary
	s.Lines = len(items)
	for _, it := range items {
		s.Units += it.Quantity
		s.Subtotal += it.Subtotal()
	}
	s.ServiceFee = int64(math.Round(float64(s.Subtotal) * ServiceFeeRate))
	s.Total = s.Subtotal + s.ServiceFee
	return s
}

type SellerStats struct {
	Artworks    int   `json:"artworks"`
	TotalViews  int   `json:"total_views"`
	TotalLikes  int   `json:"total_likes"`
	ListedValue int64 `json:"listed_value"`
}

type BuyerStats struct {
	Liked     int `json:"liked"`
	Favorites int `json:"favorites"`
	CartLines int `json:"cart_lines"`
}

type AdminStats struct {
	Artworks   int `json:"artworks"`
	Sellers    int `json:"sellers"`
	TotalLikes int `json:"total_likes"`
	TotalViews int `json:"total_views"`
}

// SellerArtworks lists a seller's artworks in catalog order.
func (s *Store) SellerArtworks(sellerID string) []works.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]works.Artwork, 0)
	for _, a := range s.artworks {
		if a.SellerID == sellerID {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) SellerStats(sellerID string) SellerStats {
	var st SellerStats
	for _, a := range s.SellerArtworks(sellerID) {
		st.Artworks++
		st.TotalViews += a.Views
		st.TotalLikes += a.Likes
		st.ListedValue += a.Price
	}
	return st
}

func (s *Store) BuyerStats() BuyerStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := BuyerStats{Favorites: len(s.favorites), CartLines: len(s.cart)}
	for _, a := range s.artworks {
		if a.IsLiked {
			st.Liked++
		}
	}
	return st
}

func (s *Store) AdminStats() AdminStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sellers := make(map[string]struct{})
	st := AdminStats{Artworks: len(s.artworks)}
	for _, a := range s.artworks {
		sellers[a.SellerID] = struct{}{}
		st.TotalLikes += a.Likes
		st.TotalViews += a.Views
	}
	st.Sellers = len(sellers)
	return st
}
