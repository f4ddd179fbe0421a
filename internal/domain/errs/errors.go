// Package errs holds the error kinds the stores report.
// Callers match them with errors.Is after any amount of wrapping.
package errs

import "github.com/pkg/errors"

var (
	// ErrAuthentication is returned by login/register for rejected credentials.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNotFound is returned when an artwork or cart line does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPersistence marks durable slot failures. It is logged, never surfaced to callers.
	ErrPersistence = errors.New("persistence failure")
	// ErrStaleSession is returned by an auth attempt overtaken by a newer attempt or a logout.
	ErrStaleSession = errors.New("session superseded")
	// ErrInvalidInput is returned for drafts and other inputs that fail validation.
	ErrInvalidInput = errors.New("invalid input")
)
