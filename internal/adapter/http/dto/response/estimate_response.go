package response

import (
	"time"

	"github.com/shopspring/decimal"

	"sfg_core/internal/domain/entities"
)

type LineItemResponse struct {
	ID              string          `json:"id"`
	PriceBookItemID string          `json:"priceBookItemId"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Unit            string          `json:"unit"`
	Description     string          `json:"description"`
	Qty             decimal.Decimal `json:"qty"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Taxable         bool            `json:"taxable"`
	Total           decimal.Decimal `json:"total"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:              li.ID,
		PriceBookItemID: li.PriceBookItemID,
		Name:            li.Name,
		Type:            string(li.Type),
		Unit:            string(li.Unit),
		Description:     li.Description,
		Qty:             li.Qty,
		UnitPrice:       li.UnitPrice,
		Taxable:         li.Taxable,
		Total:           li.Total(),
	}
}

type EstimateTotalsResponse struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type EstimateResponse struct {
	ID         string                 `json:"id"`
	JobID      string                 `json:"jobId"`
	CustomerID string                 `json:"customerId"`
	Title      string                 `json:"title"`
	Status     string                 `json:"status"`
	TaxRate    decimal.Decimal        `json:"taxRate"`
	Items      []LineItemResponse     `json:"items"`
	Totals     EstimateTotalsResponse `json:"totals"`
	CreatedAt  time.Time              `json:"createdAt"`
	UpdatedAt  time.Time              `json:"updatedAt"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	items := make([]LineItemResponse, 0, len(e.Items))
	for _, li := range e.Items {
		items = append(items, FromLineItem(li))
	}
	return EstimateResponse{
		ID:         e.ID,
		JobID:      e.JobID,
		CustomerID: e.CustomerID,
		Title:      e.Title,
		Status:     string(e.Status),
		TaxRate:    e.TaxRate,
		Items:      items,
		Totals: EstimateTotalsResponse{
			Subtotal: e.Totals.Subtotal,
			Tax:      e.Totals.Tax,
			Total:    e.Totals.Total,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
