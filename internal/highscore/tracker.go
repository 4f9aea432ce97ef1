package highscore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Tracker holds the best score in memory and writes it through to a Store
// whenever it is beaten. The store is read once, when the tracker is created.
// Safe for concurrent use, so one tracker can serve many sessions.
type Tracker struct {
	store Store
	key   string

	mu   sync.Mutex
	best int
}

// NewTracker loads the best score stored under key. On error the tracker is
// still usable and starts from zero.
func NewTracker(ctx context.Context, store Store, key string) (*Tracker, error) {
	t := &Tracker{store: store, key: key}
	best, err := ReadBest(ctx, store, key)
	if err != nil {
		return t, err
	}
	t.best = best
	return t, nil
}

// ReadBest returns the best score stored under key, or zero if none is stored.
func ReadBest(ctx context.Context, store Store, key string) (int, error) {
	value, ok, err := store.Read(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("reading best score: %w", err)
	}
	if !ok {
		return 0, nil
	}

	best, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || best < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}
	return best, nil
}

// NewMemoryTracker creates a tracker that forgets everything on exit.
func NewMemoryTracker(key string) *Tracker {
	return &Tracker{store: NewMemoryStore(), key: key}
}

// Best returns the highest score seen so far.
func (t *Tracker) Best() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.best
}

// Submit records a final score. When it beats the best, the best is updated
// and persisted. The in-memory best is updated even if persisting fails.
func (t *Tracker) Submit(ctx context.Context, score int) (best int, newBest bool, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if score <= t.best {
		return t.best, false, nil
	}
	t.best = score
	if err := t.store.Write(ctx, t.key, strconv.Itoa(score)); err != nil {
		return score, true, fmt.Errorf("writing best score: %w", err)
	}
	return score, true, nil
}
