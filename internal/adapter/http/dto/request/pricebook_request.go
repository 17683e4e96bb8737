package request

import (
	"github.com/shopspring/decimal"

	"sfg_core/internal/usecase"
)

// PriceBookItemRequest is the create/update payload for a catalog entry.
// Unit accepts the legacy short forms ("ea", "hr"); normalization happens in
// the use case.
type PriceBookItemRequest struct {
	Type        string          `json:"type" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Unit        string          `json:"unit" binding:"required"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Taxable     bool            `json:"taxable"`
	SKU         string          `json:"sku"`
	IsActive    *bool           `json:"isActive"`
}

func (r PriceBookItemRequest) ToInput() usecase.UpsertPriceBookItemInput {
	return usecase.UpsertPriceBookItemInput{
		Type:        r.Type,
		Name:        r.Name,
		Category:    r.Category,
		Description: r.Description,
		Unit:        r.Unit,
		Price:       r.Price,
		Cost:        r.Cost,
		Taxable:     r.Taxable,
		SKU:         r.SKU,
		IsActive:    r.IsActive,
	}
}
