package interfaces

import "context"

// IRowIdentityStore persists the row-slot to durable-id bookkeeping so an
// open estimate grid survives page reloads.
//
// Get returns "" with a nil error when the slot was never saved. Telling
// "never saved" apart from "saved but the record vanished" is not the store's
// job; the registry does that by checking remembered ids against a fresh
// authoritative fetch.
type IRowIdentityStore interface {
	Get(ctx context.Context, estimateID, rowKey string) (string, error)
	Set(ctx context.Context, estimateID, rowKey, lineItemID string) error
	Clear(ctx context.Context, estimateID, rowKey string) error
	List(ctx context.Context, estimateID string) (map[string]string, error)
}
