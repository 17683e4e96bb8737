package request

import (
	"github.com/shopspring/decimal"

	"sfg_core/internal/usecase"
)

// EstimateGetOrCreateRequest resolves the job whose estimate is requested.
type EstimateGetOrCreateRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

// EstimateAddItemRequest adds a price-book snapshot line. Qty omitted or
// zero defaults to one.
type EstimateAddItemRequest struct {
	PriceBookItemID string          `json:"priceBookItemId" binding:"required"`
	Qty             decimal.Decimal `json:"qty"`
}

// EstimateUpdateItemRequest patches a line's qty and/or unit price.
type EstimateUpdateItemRequest struct {
	Qty       *decimal.Decimal `json:"qty"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

func (r EstimateUpdateItemRequest) ToPatch() usecase.LineItemPatch {
	return usecase.LineItemPatch{Qty: r.Qty, UnitPrice: r.UnitPrice}
}
