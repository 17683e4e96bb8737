package request

import (
	"sfg_core/internal/domain/entities"
)

// AddressRequest accepts both the current field names and the legacy "zip"
// shorthand the intake widget sends.
type AddressRequest struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Zip        string `json:"zip"`
}

func (r AddressRequest) ToAddress() entities.Address {
	postal := r.PostalCode
	if postal == "" {
		postal = r.Zip
	}
	return entities.Address{
		Line1:      r.Line1,
		Line2:      r.Line2,
		City:       r.City,
		State:      r.State,
		PostalCode: postal,
	}
}
