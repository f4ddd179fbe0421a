// Package catalog owns the artwork list, the favorites set, the cart and the
// transient browsing selection. Every mutation goes through Store so the
// like/cart/favorite invariants hold; readers always receive copies.
package catalog

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"artivisual-app/internal/domain/errs"
	"artivisual-app/internal/domain/works"
	logs "artivisual-app/internal/infra/log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Options struct {
	Logger *slog.Logger
	Now    func() time.Time
	NewID  func() string
}

type Store struct {
	validate *validator.Validate
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string

	mu        sync.RWMutex
	artworks  []works.Artwork
	favorites []works.Artwork
	cart      []works.CartItem
	query     string
	category  string
	modal     ModalState
	authForm  AuthFormState
}

// NewStore copies seed into a new catalog. A nil seed starts from works.SeedCatalog.
func NewStore(seed []works.Artwork, opts Options) *Store {
	if seed == nil {
		seed = works.SeedCatalog()
	}

	s := &Store{
		validate: validator.New(),
		logger:   opts.Logger,
		now:      opts.Now,
		newID:    opts.NewID,
		artworks: slices.Clone(seed),
		modal:    ModalClosed{},
		authForm: AuthFormState{Mode: AuthLogin},
	}
	if s.logger == nil {
		s.logger = logs.Discard()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = func() string {
			id, err := uuid.NewV7()
			if err != nil {
				return uuid.NewString()
			}
			return id.String()
		}
	}
	return s
}

// ------------------------------
// read access
// ------------------------------

func (s *Store) Artworks() []works.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.artworks)
}

func (s *Store) Artwork(id string) (works.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return works.Artwork{}, errors.Wrapf(errs.ErrNotFound, "artwork %q", id)
	}
	return s.artworks[i], nil
}

func (s *Store) Favorites() []works.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

func (s *Store) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favoriteIndex(id) >= 0
}

func (s *Store) Cart() []works.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cart)
}

func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

func (s *Store) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// ------------------------------
// mutations
// ------------------------------

// ToggleLike flips IsLiked and moves Likes by one in the same step.
func (s *Store) ToggleLike(id string) (works.Artwork, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return works.Artwork{}, errors.Wrapf(errs.ErrNotFound, "artwork %q", id)
	}

	a := &s.artworks[i]
	if a.IsLiked {
		a.IsLiked = false
		if a.Likes > 0 {
			a.Likes--
		}
	} else {
		a.IsLiked = true
		a.Likes++
	}

	s.logger.Debug("Artwork like toggled", slog.String("artwork_id", id), slog.Bool("liked", a.IsLiked), slog.Int("likes", a.Likes))
	return *a, nil
}

// ToggleFavorite removes the artwork from favorites if present, else appends it.
// added reports which of the two happened.
func (s *Store) ToggleFavorite(a works.Artwork) (added bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(a.ID) < 0 {
		return false, errors.Wrapf(errs.ErrNotFound, "artwork %q", a.ID)
	}

	if i := s.favoriteIndex(a.ID); i >= 0 {
		s.favorites = slices.Delete(s.favorites, i, i+1)
		s.logger.Debug("Favorite removed", slog.String("artwork_id", a.ID))
		return false, nil
	}

	s.favorites = append(s.favorites, a)
	s.logger.Debug("Favorite added", slog.String("artwork_id", a.ID))
	return true, nil
}

// AddToCart bumps the quantity of an existing line or appends a new one.
func (s *Store) AddToCart(a works.Artwork) (works.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(a.ID) < 0 {
		return works.CartItem{}, errors.Wrapf(errs.ErrNotFound, "artwork %q", a.ID)
	}

	if i := s.cartIndex(a.ID); i >= 0 {
		s.cart[i].Quantity++
		s.logger.Debug("Cart line incremented", slog.String("artwork_id", a.ID), slog.Int("quantity", s.cart[i].Quantity))
		return s.cart[i], nil
	}

	item := works.CartItem{Artwork: a, Quantity: 1}
	s.cart = append(s.cart, item)
	s.logger.Debug("Cart line added", slog.String("artwork_id", a.ID))
	return item, nil
}

// RemoveFromCart drops the whole line whatever its quantity.
func (s *Store) RemoveFromCart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.cartIndex(id)
	if i < 0 {
		return errors.Wrapf(errs.ErrNotFound, "cart line %q", id)
	}
	s.cart = slices.Delete(s.cart, i, i+1)
	s.logger.Debug("Cart line removed", slog.String("artwork_id", id))
	return nil
}

// AddArtwork lists a seller upload. The new artwork goes first so the catalog stays newest-first.
func (s *Store) AddArtwork(d works.Draft) (works.Artwork, error) {
	if err := s.validate.Struct(d); err != nil {
		return works.Artwork{}, errors.Wrap(errs.ErrInvalidInput, err.Error())
	}

	a := works.Artwork{
		ID:          s.newID(),
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
		SellerID:    d.SellerID,
		SellerName:  d.SellerName,
		CreatedAt:   s.now().UTC(),
		Watermarked: d.Watermarked,
	}

	s.mu.Lock()
	s.artworks = slices.Insert(s.artworks, 0, a)
	s.mu.Unlock()

	s.logger.Info("Artwork listed", slog.String("artwork_id", a.ID), slog.String("seller_id", a.SellerID))
	return a, nil
}

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

func (s *Store) SetSelectedCategory(c string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = c
}

// ResetSessionState forgets the per-user favorites and cart when a session ends.
func (s *Store) ResetSessionState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = nil
	s.cart = nil
}

// ------------------------------
// derived views
// ------------------------------

// FilteredArtworks applies the current search query to the catalog.
func (s *Store) FilteredArtworks() []works.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterArtworks(s.artworks, s.query)
}

// Browse narrows FilteredArtworks by category and price and sorts it.
func (s *Store) Browse(q BrowseQuery) []works.Artwork {
	return Browse(s.FilteredArtworks(), q)
}

func (s *Store) FavoritesView(query, category string) []works.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterFavorites(s.favorites, query, category)
}

func (s *Store) CartSummary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Summarize(s.cart)
}

// ------------------------------
// helpers (callers hold mu)
// ------------------------------

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.artworks, func(a works.Artwork) bool { return a.ID == id })
}

func (s *Store) favoriteIndex(id string) int {
	return slices.IndexFunc(s.favorites, func(a works.Artwork) bool { return a.ID == id })
}

func (s *Store) cartIndex(id string) int {
	return slices.IndexFunc(s.cart, func(ci works.CartItem) bool { return ci.Artwork.ID == id })
}
