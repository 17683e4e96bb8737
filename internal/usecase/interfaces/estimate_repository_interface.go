package interfaces

import (
	"context"
	"sfg_core/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Save persists the whole document, lines included; the use case always
// recalculates totals before saving, so stored totals are authoritative.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Estimate, error)
	Save(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
