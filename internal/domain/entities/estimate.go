package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus is the estimate document state. Estimates start as drafts;
// locking is driven by the parent job's status, not by this field.
type EstimateStatus string

const (
	EstimateStatusDraft EstimateStatus = "draft"
)

// LineItem is a price-book snapshot on an estimate. Name, unit, price and
// taxability are copied at add time; later price-book edits never touch an
// existing line. PriceBookItemID is provenance only and may dangle once the
// catalog entry is archived or deleted.
type LineItem struct {
	ID              string            `json:"id"`
	PriceBookItemID string            `json:"priceBookItemId"`
	Name            string            `json:"name"`
	Type            PriceBookItemType `json:"type"`
	Unit            PriceBookUnit     `json:"unit"`
	Description     string            `json:"description"`
	Qty             decimal.Decimal   `json:"qty"`
	UnitPrice       decimal.Decimal   `json:"unitPrice"`
	Taxable         bool              `json:"taxable"`
}

// Total is the line's extended amount.
func (li LineItem) Total() decimal.Decimal {
	return li.Qty.Mul(li.UnitPrice)
}

// EstimateTotals is the server-computed money summary. Clients never supply
// these; every mutation recomputes them.
type EstimateTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Estimate is the line-item collection attached to a job (one per job).
//
// Storage model (DynamoDB):
//   - PK: id
//   - items stored inline as a list attribute
type Estimate struct {
	ID         string          `json:"id"`
	JobID      string          `json:"jobId"`
	CustomerID string          `json:"customerId"`
	Title      string          `json:"title"`
	Status     EstimateStatus  `json:"status"`
	TaxRate    decimal.Decimal `json:"taxRate"`
	Items      []LineItem      `json:"items"`
	Totals     EstimateTotals  `json:"totals"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Recalculate recomputes subtotal/tax/total from the lines. Tax applies the
// rate to taxable lines only.
func (e *Estimate) Recalculate() {
	subtotal := decimal.Zero
	taxBase := decimal.Zero
	for _, li := range e.Items {
		total := li.Total()
		subtotal = subtotal.Add(total)
		if li.Taxable {
			taxBase = taxBase.Add(total)
		}
	}
	tax := taxBase.Mul(e.TaxRate)
	e.Totals = EstimateTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// ItemByID finds a line by id; the second return is false when absent.
func (e *Estimate) ItemByID(itemID string) (*LineItem, bool) {
	for i := range e.Items {
		if e.Items[i].ID == itemID {
			return &e.Items[i], true
		}
	}
	return nil, false
}

// RemoveItem drops a line by id and reports whether it was present.
func (e *Estimate) RemoveItem(itemID string) bool {
	for i := range e.Items {
		if e.Items[i].ID == itemID {
			e.Items = append(e.Items[:i], e.Items[i+1:]...)
			return true
		}
	}
	return false
}

// NewLineItemFromPriceBook snapshots a catalog item into a line.
func NewLineItemFromPriceBook(id string, item PriceBookItem, qty decimal.Decimal) LineItem {
	return LineItem{
		ID:              id,
		PriceBookItemID: item.ID,
		Name:            item.Name,
		Type:            item.Type,
		Unit:            item.Unit,
		Description:     item.Description,
		Qty:             qty,
		UnitPrice:       item.Price,
		Taxable:         item.Taxable,
	}
}
