// Package session owns the current user: login, registration, logout and
// restoring the identity from the durable slot on start.
//
// Login and Register wait out a simulated latency before they apply. Calls may
// overlap; the attempt started last wins, and an attempt overtaken by a newer
// attempt or by Logout returns errs.ErrStaleSession without touching the session.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"artivisual-app/internal/domain/errs"
	"artivisual-app/internal/domain/users"
	logs "artivisual-app/internal/infra/log"
	"artivisual-app/internal/infra/slot"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SlotKey is the durable slot entry holding the serialized user.
const SlotKey = "artivisual_user"

type Options struct {
	// Delay is the simulated network latency of Login and Register.
	Delay  time.Duration
	Logger *slog.Logger
	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

type Store struct {
	slot     slot.Slot
	resolver Resolver
	validate *validator.Validate
	logger   *slog.Logger
	delay    time.Duration
	now      func() time.Time
	newID    func() string

	mu       sync.RWMutex
	current  *users.User
	attempts uint64
	gen      uint64
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registerInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Name     string `validate:"required"`
	Role     string `validate:"required,oneof=buyer seller"`
}

// NewStore builds the store and restores any session found in the slot.
func NewStore(ctx context.Context, s slot.Slot, r Resolver, opts Options) *Store {
	st := &Store{
		slot:     s,
		resolver: r,
		validate: validator.New(),
		logger:   opts.Logger,
		delay:    opts.Delay,
		now:      opts.Now,
		newID:    opts.NewID,
	}
	if st.logger == nil {
		st.logger = logs.Discard()
	}
	if st.now == nil {
		st.now = time.Now
	}
	if st.newID == nil {
		st.newID = newUUID
	}

	st.Restore(ctx)
	return st
}

func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Current returns a copy of the current user.
func (s *Store) Current() (users.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return users.User{}, false
	}
	return *s.current, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Generation increases every time the session is replaced or cleared.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Snapshot reads the current user and generation together.
func (s *Store) Snapshot() (users.User, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return users.User{}, s.gen, false
	}
	return *s.current, s.gen, true
}

// Login returns the resolved user and the generation its session was applied at.
func (s *Store) Login(ctx context.Context, email, password string) (users.User, uint64, error) {
	err := s.validate.Struct(loginInput{Email: email, Password: password})
	if err == nil && !users.IsEmailValid(email) {
		err = errors.New("malformed email")
	}
	if err != nil {
		s.logger.Info("Login rejected", slog.String("email", email), slog.Any("error", err))
		return users.User{}, 0, errors.Wrap(errs.ErrAuthentication, "email and password are required")
	}

	ticket := s.begin()
	if err := s.wait(ctx); err != nil {
		s.release(ticket)
		return users.User{}, 0, err
	}

	u, err := s.resolver.Resolve(ctx, email, password)
	if err != nil {
		s.release(ticket)
		s.logger.Warn("Identity lookup failed", slog.String("email", email), slog.Any("error", err))
		return users.User{}, 0, errors.Wrap(errs.ErrAuthentication, err.Error())
	}

	gen, err := s.apply(ctx, ticket, u)
	if err != nil {
		return users.User{}, 0, err
	}
	s.logger.Info("User logged in", slog.String("user_id", u.ID), slog.String("role", string(u.Role)))
	return u, gen, nil
}

func (s *Store) Register(ctx context.Context, email, password, name string, role users.Role) (users.User, uint64, error) {
	in := registerInput{Email: email, Password: password, Name: name, Role: string(role)}
	err := s.validate.Struct(in)
	if err == nil && !users.IsEmailValid(email) {
		err = errors.New("malformed email")
	}
	if err != nil {
		s.logger.Info("Registration rejected", slog.String("email", email), slog.Any("error", err))
		return users.User{}, 0, errors.Wrap(errs.ErrAuthentication, "invalid registration details")
	}

	ticket := s.begin()
	if err := s.wait(ctx); err != nil {
		s.release(ticket)
		return users.User{}, 0, err
	}

	u := users.User{
		ID:         s.newID(),
		Email:      email,
		Name:       name,
		Role:       role,
		JoinedDate: users.FormatDate(s.now()),
	}

	gen, err := s.apply(ctx, ticket, u)
	if err != nil {
		return users.User{}, 0, err
	}
	s.logger.Info("User registered", slog.String("user_id", u.ID), slog.String("role", string(u.Role)))
	return u, gen, nil
}

// Logout clears the session and the slot. Safe without a session.
// Any Login or Register still waiting is superseded.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.attempts++
	hadSession := s.current != nil
	s.current = nil
	s.gen++
	if err := s.slot.Delete(ctx, SlotKey); err != nil {
		s.logger.Error("Failed to clear durable session",
			slog.Any("error", errors.Wrap(errs.ErrPersistence, err.Error())))
	}
	s.mu.Unlock()

	if hadSession {
		s.logger.Info("User logged out")
	}
}

// Restore loads the slot into memory. Any failure leaves the store without a session.
func (s *Store) Restore(ctx context.Context) {
	u, err := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if err != nil {
		s.current = nil
		if !errors.Is(err, slot.ErrEmpty) {
			s.logger.Warn("Ignoring stored session", slog.Any("error", err))
		}
		return
	}
	s.current = &u
	s.logger.Info("Session restored", slog.String("user_id", u.ID))
}

func (s *Store) load(ctx context.Context) (users.User, error) {
	raw, err := s.slot.Get(ctx, SlotKey)
	if err != nil {
		if errors.Is(err, slot.ErrEmpty) {
			return users.User{}, err
		}
		return users.User{}, errors.Wrap(errs.ErrPersistence, err.Error())
	}

	var u users.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return users.User{}, errors.Wrap(errs.ErrPersistence, "malformed session record")
	}
	if !u.Valid() {
		return users.User{}, errors.Wrap(errs.ErrPersistence, "incomplete session record")
	}
	return u, nil
}

func (s *Store) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	return s.attempts
}

// release hands back a ticket that will never apply, so an older attempt still
// pending is not reported stale. A ticket already overtaken stays spent.
func (s *Store) release(ticket uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket == s.attempts {
		s.attempts--
	}
}

func (s *Store) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *Store) apply(ctx context.Context, ticket uint64, u users.User) (uint64, error) {
	raw, err := json.Marshal(u)
	if err != nil {
		return 0, errors.Wrap(err, "encode session")
	}

	s.mu.Lock()
	if ticket != s.attempts {
		s.mu.Unlock()
		s.logger.Info("Discarding superseded auth result", slog.String("user_id", u.ID))
		return 0, errs.ErrStaleSession
	}
	s.current = &u
	s.gen++
	gen := s.gen
	// slot writes stay under mu so they land in session order
	if err := s.slot.Set(ctx, SlotKey, raw); err != nil {
		s.logger.Error("Failed to persist session",
			slog.Any("error", errors.Wrap(errs.ErrPersistence, err.Error())))
	}
	s.mu.Unlock()
	return gen, nil
}
