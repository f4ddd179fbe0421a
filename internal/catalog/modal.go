package catalog

import "artivisual-app/internal/domain/works"

// ModalState is either ModalClosed or ModalOpen. Closed carries no artwork.
type ModalState interface {
	isModal()
}

type ModalClosed struct{}

type ModalOpen struct {
	Artwork works.Artwork
}

func (ModalClosed) isModal() {}
func (ModalOpen) isModal()   {}

func (s *Store) OpenArtwork(a works.Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalOpen{Artwork: a}
}

func (s *Store) CloseArtwork() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalClosed{}
}

func (s *Store) Modal() ModalState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modal
}

type AuthMode string

const (
	AuthLogin    AuthMode = "login"
	AuthRegister AuthMode = "register"
)

type AuthFormState struct {
	Open bool     `json:"open"`
	Mode AuthMode `json:"mode"`
}

// ToggleAuthForm opens or closes the sign-in form. An empty mode keeps the last one.
func (s *Store) ToggleAuthForm(mode AuthMode) AuthFormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mode == AuthLogin || mode == AuthRegister {
		s.authForm.Mode = mode
	}
	s.authForm.Open = !s.authForm.Open
	return s.authForm
}

func (s *Store) AuthForm() AuthFormState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authForm
}
