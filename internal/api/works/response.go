package works

import (
	"artivisual-app/internal/catalog"
	"artivisual-app/internal/domain/works"
)

type ArtworkDTO struct {
	works.Artwork
	Favorite bool `json:"favorite"`
}

type ArtworkListDTO struct {
	Artworks   []ArtworkDTO `json:"artworks"`
	Count      int          `json:"count"`
	Query      string       `json:"query"`
	Categories []string     `json:"categories"`
}

type SellerDTO struct {
	SellerID   string              `json:"seller_id"`
	SellerName string              `json:"seller_name"`
	Stats      catalog.SellerStats `json:"stats"`
	Artworks   []ArtworkDTO        `json:"artworks"`
}

func toArtworkDTO(store *catalog.Store, a works.Artwork) ArtworkDTO {
	return ArtworkDTO{Artwork: a, Favorite: store.IsFavorite(a.ID)}
}

func toArtworkListDTO(store *catalog.Store, list []works.Artwork) ArtworkListDTO {
	out := ArtworkListDTO{
		Artworks:   make([]ArtworkDTO, 0, len(list)),
		Count:      len(list),
		Query:      store.SearchQuery(),
		Categories: catalog.Categories(list),
	}
	for _, a := range list {
		out.Artworks = append(out.Artworks, toArtworkDTO(store, a))
	}
	return out
}
