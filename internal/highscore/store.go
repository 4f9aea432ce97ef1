// Package highscore persists the best score across sessions.
package highscore

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidValue is returned when a stored best score is not an integer.
var ErrInvalidValue = errors.New("highscore: invalid stored value")

// Store is a minimal key-value capability.
type Store interface {
	// Read returns the value for key and whether it was present.
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	// Write sets the value for key.
	Write(ctx context.Context, key, value string) error
}

// Open picks a store: PostgreSQL when dsn is set, a JSON file when path is set,
// memory otherwise. The returned close function releases the store's resources.
func Open(ctx context.Context, dsn, path string) (Store, func() error, error) {
	switch {
	case dsn != "":
		pg, err := OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("opening postgres store: %w", err)
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, nil, fmt.Errorf("migrating postgres store: %w", err)
		}
		return pg, pg.Close, nil
	case path != "":
		return NewFileStore(path), noopClose, nil
	default:
		return NewMemoryStore(), noopClose, nil
	}
}

func noopClose() error { return nil }
