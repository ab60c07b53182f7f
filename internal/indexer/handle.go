package indexer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kjnav/kjnav/internal/symbols"
)

// Handle is the serve-phase wrapper around a symbols.Index (§5): many
// concurrent queries hold the read side; Reindex builds a fresh index
// out-of-band and swaps it in under the write side, so no partial
// mutation is ever visible.
type Handle struct {
	mu  sync.RWMutex
	idx *symbols.Index
}

// NewHandle builds the initial index from files and publishes it.
func NewHandle(ctx context.Context, files []string, read ContentReader, logger *slog.Logger) (*Handle, error) {
	idx, err := Build(ctx, files, read, logger)
	if err != nil {
		return nil, err
	}
	CrossReference(idx)
	return &Handle{idx: idx}, nil
}

// Get returns the currently published index. Callers must not mutate it;
// it is replaced wholesale by Reindex, never patched in place.
func (h *Handle) Get() *symbols.Index {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.idx
}

// Reindex rebuilds the index from files and swaps it in under the write
// lock. It returns the stats of both the previous and the new index for
// the caller's report. On a structural invariant violation (ErrIndex),
// the previously published index is left untouched and err is non-nil.
func (h *Handle) Reindex(ctx context.Context, files []string, read ContentReader, logger *slog.Logger) (before, after symbols.Stats, err error) {
	fresh, err := Build(ctx, files, read, logger)
	if err != nil {
		return symbols.Stats{}, symbols.Stats{}, err
	}
	CrossReference(fresh)

	h.mu.Lock()
	if h.idx != nil {
		before = h.idx.Stats()
	}
	h.idx = fresh
	after = fresh.Stats()
	h.mu.Unlock()

	return before, after, nil
}
