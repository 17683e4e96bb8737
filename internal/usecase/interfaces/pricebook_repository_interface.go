package interfaces

import (
	"context"
	"sfg_core/internal/domain/entities"
)

// IPriceBookRepository abstracts DynamoDB persistence for PriceBookItem.
//
// List returns the full table snapshot; filtering happens in the use case so
// search/category semantics stay in one place.
type IPriceBookRepository interface {
	Create(ctx context.Context, item entities.PriceBookItem) (entities.PriceBookItem, error)
	GetByID(ctx context.Context, id string) (entities.PriceBookItem, error)
	List(ctx context.Context) ([]entities.PriceBookItem, error)
	Save(ctx context.Context, item entities.PriceBookItem) (entities.PriceBookItem, error)
}
