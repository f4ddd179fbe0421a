// Package slot is the durable key-value storage that keeps the session across restarts.
package slot

import (
	"context"

	"github.com/pkg/errors"
)

// ErrEmpty is returned by Get when nothing is stored under the key.
var ErrEmpty = errors.New("slot is empty")

type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
