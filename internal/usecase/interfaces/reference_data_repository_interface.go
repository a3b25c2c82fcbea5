package interfaces

import (
	"context"
	"psaops/internal/domain/entities"
)

// IReferenceDataRepository abstracts read-only pricing reference data: roles
// (with their rate tables), employees, delivery centers and currency rates.
//
// Reads are keyed by the caller's current selection; a result whose id no
// longer matches the selection must be discarded by the caller (stale-fetch
// guard), never applied.
type IReferenceDataRepository interface {
	GetRole(ctx context.Context, id string) (entities.Role, error)
	GetEmployee(ctx context.Context, id string) (entities.Employee, error)
	ListDeliveryCenters(ctx context.Context) ([]entities.DeliveryCenter, error)
	ListCurrencyRates(ctx context.Context) ([]entities.CurrencyRate, error)
}
