package interfaces

import (
	"context"
	"sfg_core/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer.
//
// Delete exists for the lead-conversion compensation path; the dashboard has
// no standalone customer-delete action.
type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Save(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
