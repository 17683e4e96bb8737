package interfaces

import (
	"context"
	"sfg_core/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead (intake).
//
// MarkConverted must stamp status/convertedToCustomerId under a conditional
// write that fails when the lead is already converted; that condition is the
// convert-at-most-once guard.
type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	List(ctx context.Context) ([]entities.Lead, error)
	Save(ctx context.Context, l entities.Lead) (entities.Lead, error)
	MarkConverted(ctx context.Context, id, customerID string) (entities.Lead, error)
}
