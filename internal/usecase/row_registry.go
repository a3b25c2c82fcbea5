package usecase

import (
	"context"
	"log"
	"sync"

	"psaops/internal/usecase/interfaces"
)

// RowIdentityRegistry maps an estimate's stable row slots to durable
// line-item ids. The mapping is backed by a durable store so an open grid
// survives page reloads; the in-memory copy is the working cache.
//
// The registry distinguishes "never saved" (no entry) from "previously saved
// but the record vanished": Prune checks every remembered id against a fresh
// authoritative fetch and clears the ones that no longer exist, so no further
// operation is attempted against a nonexistent record.
type RowIdentityRegistry struct {
	store      interfaces.IRowIdentityStore
	estimateID string

	mu  sync.Mutex
	ids map[string]string // row key -> line item id
}

func NewRowIdentityRegistry(store interfaces.IRowIdentityStore, estimateID string) *RowIdentityRegistry {
	return &RowIdentityRegistry{
		store:      store,
		estimateID: estimateID,
		ids:        map[string]string{},
	}
}

// Load restores the persisted mapping into the cache.
func (r *RowIdentityRegistry) Load(ctx context.Context) error {
	ids, err := r.store.List(ctx, r.estimateID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = make(map[string]string, len(ids))
	for k, v := range ids {
		if v != "" {
			r.ids[k] = v
		}
	}
	return nil
}

// Get returns the durable id remembered for the row slot, or "".
func (r *RowIdentityRegistry) Get(rowKey string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ids[rowKey]
}

// Set records the durable id for a row slot, in cache and store.
func (r *RowIdentityRegistry) Set(ctx context.Context, rowKey, lineItemID string) error {
	r.mu.Lock()
	r.ids[rowKey] = lineItemID
	r.mu.Unlock()
	return r.store.Set(ctx, r.estimateID, rowKey, lineItemID)
}

// Clear forgets a row slot's id, in cache and store.
func (r *RowIdentityRegistry) Clear(ctx context.Context, rowKey string) error {
	r.mu.Lock()
	delete(r.ids, rowKey)
	r.mu.Unlock()
	return r.store.Clear(ctx, r.estimateID, rowKey)
}

// All returns a copy of the current row-key to id mapping.
func (r *RowIdentityRegistry) All() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]string, len(r.ids))
	for k, v := range r.ids {
		out[k] = v
	}
	return out
}

// RowKeyFor returns the row slot already associated with a durable id, if
// any. Used during reconciliation so an authoritative record is never given
// a second slot.
func (r *RowIdentityRegistry) RowKeyFor(lineItemID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, v := range r.ids {
		if v == lineItemID {
			return k, true
		}
	}
	return "", false
}

// Prune drops every remembered id that is absent from the authoritative id
// set and returns the affected row keys. Stale entries are a normal
// consequence of out-of-band deletes; they are logged, not surfaced.
func (r *RowIdentityRegistry) Prune(ctx context.Context, live map[string]bool) []string {
	r.mu.Lock()
	var stale []string
	for rowKey, id := range r.ids {
		if !live[id] {
			stale = append(stale, rowKey)
		}
	}
	for _, rowKey := range stale {
		delete(r.ids, rowKey)
	}
	r.mu.Unlock()

	for _, rowKey := range stale {
		if err := r.store.Clear(ctx, r.estimateID, rowKey); err != nil {
			log.Printf("[rows][registry] clear failed estimate=%s row=%s err=%v", r.estimateID, rowKey, err)
		} else {
			log.Printf("[rows][registry] pruned stale id for estimate=%s row=%s", r.estimateID, rowKey)
		}
	}
	return stale
}
