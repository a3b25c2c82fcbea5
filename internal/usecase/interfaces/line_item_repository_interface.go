package interfaces

import (
	"context"
	"psaops/internal/domain/entities"
)

// ILineItemRepository abstracts the remote store for estimate line items and
// their weekly-hours sub-resource.
//
// Conventions (shared with the reference-data repository):
//   - A zero-value entity with a nil error means "not found".
//   - Update against a vanished id returns the zero value, not an error, so
//     callers can reset the row instead of failing the user's edit.
//   - Delete reports whether a record was actually removed; callers need to
//     tell "already gone" apart from transport failures.
type ILineItemRepository interface {
	Create(ctx context.Context, estimateID string, item entities.LineItem) (entities.LineItem, error)
	Update(ctx context.Context, estimateID, lineItemID string, patch entities.LineItemPatch) (entities.LineItem, error)
	Delete(ctx context.Context, estimateID, lineItemID string) (found bool, err error)
	GetEstimateDetail(ctx context.Context, estimateID string) (entities.EstimateDetail, error)
	SetWeeklyHours(ctx context.Context, estimateID, lineItemID, pattern string, customHours map[string]float64) error
}
