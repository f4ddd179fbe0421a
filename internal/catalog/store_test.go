package catalog

import (
	"testing"
	"time"

	"artivisual-app/internal/domain/errs"
	"artivisual-app/internal/domain/works"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testCatalog() []works.Artwork {
	return []works.Artwork{
		{ID: "1", Title: "Neon Nights", Description: "Glowing city", Price: 35000, Category: "Cyberpunk", SellerID: "2", SellerName: "Artist Creator", Likes: 42, Views: 289, CreatedAt: day("2024-03-10")},
		{ID: "2", Title: "Abstract Emotions", Description: "Color and form", Price: 18000, Category: "Abstract", SellerID: "2", SellerName: "Artist Creator", Likes: 18, Views: 92, CreatedAt: day("2024-03-08")},
		{ID: "3", Title: "Cosmic Voyage", Description: "Journey through the stars", Price: 350000, Category: "Space Art", SellerID: "3", SellerName: "Space Artist", Likes: 67, Views: 234, CreatedAt: day("2024-03-12")},
		{ID: "4", Title: "Liquid Gold", Description: "Flowing metallic textures", Price: 35000, Category: "Abstract", SellerID: "4", SellerName: "Texture Master", Likes: 0, Views: 10, CreatedAt: day("2024-02-27")},
	}
}

func newTestStore() *Store {
	return NewStore(testCatalog(), Options{
		Now:   func() time.Time { return day("2026-10-19") },
		NewID: func() string { return "new" },
	})
}

func TestNewStore_DefaultSeed(t *testing.T) {
	s := NewStore(nil, Options{})
	assert.Len(t, s.Artworks(), 20)
	assert.Equal(t, "Digital Dreams", s.Artworks()[0].Title)
}

func TestToggleLike(t *testing.T) {
	s := newTestStore()
	before, err := s.Artwork("1")
	require.NoError(t, err)

	liked, err := s.ToggleLike("1")
	require.NoError(t, err)
	assert.True(t, liked.IsLiked)
	assert.Equal(t, before.Likes+1, liked.Likes)

	unliked, err := s.ToggleLike("1")
	require.NoError(t, err)
	assert.Equal(t, before.IsLiked, unliked.IsLiked)
	assert.Equal(t, before.Likes, unliked.Likes)

	// others untouched
	other, err := s.Artwork("2")
	require.NoError(t, err)
	assert.Equal(t, testCatalog()[1], other)
}

func TestToggleLike_NeverNegative(t *testing.T) {
	s := NewStore([]works.Artwork{{ID: "x", IsLiked: true, Likes: 0}}, Options{})

	a, err := s.ToggleLike("x")
	require.NoError(t, err)
	assert.False(t, a.IsLiked)
	assert.Equal(t, 0, a.Likes)
}

func TestToggleLike_NotFound(t *testing.T) {
	s := newTestStore()
	_, err := s.ToggleLike("missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Equal(t, testCatalog(), s.Artworks())
}

func TestToggleFavorite(t *testing.T) {
	s := newTestStore()
	a, _ := s.Artwork("3")

	added, err := s.ToggleFavorite(a)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, s.IsFavorite("3"))

	added, err = s.ToggleFavorite(a)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, s.Favorites())

	_, err = s.ToggleFavorite(works.Artwork{ID: "ghost"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Empty(t, s.Favorites())
}

func TestToggleFavorite_TwiceRestoresMembership(t *testing.T) {
	s := newTestStore()
	a1, _ := s.Artwork("1")
	a2, _ := s.Artwork("2")
	_, _ = s.ToggleFavorite(a1)
	before := s.Favorites()

	_, _ = s.ToggleFavorite(a2)
	_, _ = s.ToggleFavorite(a2)
	assert.Equal(t, before, s.Favorites())
}

func TestAddToCart(t *testing.T) {
	s := newTestStore()
	a, _ := s.Artwork("1")

	item, err := s.AddToCart(a)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)

	item, err = s.AddToCart(a)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "1", cart[0].Artwork.ID)
	assert.Equal(t, 2, cart[0].Quantity)

	_, err = s.AddToCart(works.Artwork{ID: "ghost"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Len(t, s.Cart(), 1)
}

func TestRemoveFromCart(t *testing.T) {
	s := newTestStore()
	a1, _ := s.Artwork("1")
	a2, _ := s.Artwork("2")
	_, _ = s.AddToCart(a1)
	_, _ = s.AddToCart(a1)
	_, _ = s.AddToCart(a1)
	_, _ = s.AddToCart(a2)

	require.NoError(t, s.RemoveFromCart("1"))
	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "2", cart[0].Artwork.ID)

	assert.ErrorIs(t, s.RemoveFromCart("1"), errs.ErrNotFound)
	assert.Len(t, s.Cart(), 1)
}

func TestAddArtwork(t *testing.T) {
	s := newTestStore()

	a, err := s.AddArtwork(works.Draft{
		Title:       "Fresh Upload",
		Description: "Just in",
		Price:       12000,
		Category:    "Digital Art",
		ImageURL:    "https://example.com/fresh.jpg",
		SellerID:    "2",
		SellerName:  "Artist Creator",
		Watermarked: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "new", a.ID)
	assert.Equal(t, day("2026-10-19"), a.CreatedAt)
	assert.Zero(t, a.Likes)
	assert.Zero(t, a.Views)
	assert.False(t, a.IsLiked)
	assert.True(t, a.Watermarked)

	all := s.FilteredArtworks()
	require.Len(t, all, 5)
	assert.Equal(t, a, all[0])
}

func TestAddArtwork_Invalid(t *testing.T) {
	s := newTestStore()

	tests := map[string]works.Draft{
		"no title":       {Price: 1, Category: "c", SellerID: "2", SellerName: "n"},
		"negative price": {Title: "t", Price: -1, Category: "c", SellerID: "2", SellerName: "n"},
		"no seller":      {Title: "t", Price: 1, Category: "c"},
		"bad image url":  {Title: "t", Price: 1, Category: "c", SellerID: "2", SellerName: "n", ImageURL: "not a url"},
	}
	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.AddArtwork(d)
			assert.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
	assert.Len(t, s.Artworks(), 4)
}

func TestReadersGetCopies(t *testing.T) {
	s := newTestStore()
	list := s.Artworks()
	list[0].Likes = 9999

	a, _ := s.Artwork(list[0].ID)
	assert.Equal(t, 42, a.Likes)
}

func TestResetSessionState(t *testing.T) {
	s := newTestStore()
	a, _ := s.Artwork("1")
	_, _ = s.ToggleFavorite(a)
	_, _ = s.AddToCart(a)

	s.ResetSessionState()
	assert.Empty(t, s.Favorites())
	assert.Empty(t, s.Cart())
	assert.Len(t, s.Artworks(), 4)
}

func TestModalState(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, ModalClosed{}, s.Modal())

	a, _ := s.Artwork("3")
	s.OpenArtwork(a)
	open, ok := s.Modal().(ModalOpen)
	require.True(t, ok)
	assert.Equal(t, "3", open.Artwork.ID)

	s.CloseArtwork()
	assert.Equal(t, ModalClosed{}, s.Modal())
}

func TestToggleAuthForm(t *testing.T) {
	s := newTestStore()
	assert.Equal(t, AuthFormState{Open: false, Mode: AuthLogin}, s.AuthForm())

	assert.Equal(t, AuthFormState{Open: true, Mode: AuthRegister}, s.ToggleAuthForm(AuthRegister))
	assert.Equal(t, AuthFormState{Open: false, Mode: AuthRegister}, s.ToggleAuthForm(""))
	assert.Equal(t, AuthFormState{Open: true, Mode: AuthRegister}, s.ToggleAuthForm("bogus"))
}
