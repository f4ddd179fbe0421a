package catalog

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"artivisual-app/internal/domain/works"
)

// FilterArtworks keeps artworks where the trimmed, case-folded query is a substring
// of the title, description, seller name, category or decimal price. A blank query
// keeps everything. Order is preserved and the result is always a new slice.
//
// Price matching is plain substring: "35000" also matches 350000.
func FilterArtworks(artworks []works.Artwork, query string) []works.Artwork {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]works.Artwork, 0, len(artworks))
	for _, a := range artworks {
		if q == "" || matches(a, q) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a works.Artwork, q string) bool {
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Description), q) ||
		strings.Contains(strings.ToLower(a.SellerName), q) ||
		strings.Contains(strings.ToLower(a.Category), q) ||
		strings.Contains(strconv.FormatInt(a.Price, 10), q)
}

// FilterFavorites is the saved-items search: title, description and seller name only,
// plus an exact category match when category is set.
func FilterFavorites(favorites []works.Artwork, query, category string) []works.Artwork {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]works.Artwork, 0, len(favorites))
	for _, a := range favorites {
		if category != "" && a.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Title), q) &&
			!strings.Contains(strings.ToLower(a.Description), q) &&
			!strings.Contains(strings.ToLower(a.SellerName), q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Categories lists distinct categories in first-seen order.
func Categories(artworks []works.Artwork) []string {
	seen := make(map[string]struct{}, len(artworks))
	out := make([]string, 0)
	for _, a := range artworks {
		if _, ok := seen[a.Category]; ok {
			continue
		}
		seen[a.Category] = struct{}{}
		out = append(out, a.Category)
	}
	return out
}

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortPopular   SortKey = "popular"
)

// ParseSortKey maps unknown or empty keys to SortNewest.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortPriceLow, SortPriceHigh, SortPopular:
		return k
	default:
		return SortNewest
	}
}

// BrowseQuery is the listing page selection. Nil bounds are open; bounds are inclusive.
type BrowseQuery struct {
	Category string
	MinPrice *int64
	MaxPrice *int64
	Sort     SortKey
}

// Browse filters by category and price, then stable-sorts so ties keep input order.
func Browse(artworks []works.Artwork, q BrowseQuery) []works.Artwork {
	out := make([]works.Artwork, 0, len(artworks))
	for _, a := range artworks {
		if q.Category != "" && a.Category != q.Category {
			continue
		}
		if q.MinPrice != nil && a.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && a.Price > *q.MaxPrice {
			continue
		}
		out = append(out, a)
	}

	switch ParseSortKey(string(q.Sort)) {
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b works.Artwork) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b works.Artwork) int { return cmp.Compare(b.Price, a.Price) })
	case SortPopular:
		slices.SortStableFunc(out, func(a, b works.Artwork) int { return cmp.Compare(b.Likes, a.Likes) })
	default:
		slices.SortStableFunc(out, func(a, b works.Artwork) int { return b.CreatedAt.Compare(a.CreatedAt) })
	}
	return out
}
