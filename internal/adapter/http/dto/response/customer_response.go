package response

import (
	"time"

	"sfg_core/internal/domain/entities"
)

type AddressResponse struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

func fromAddress(a entities.Address) AddressResponse {
	return AddressResponse{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
	}
}

type CustomerResponse struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	DisplayName string          `json:"displayName"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Address     AddressResponse `json:"address"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DisplayName: c.DisplayName(),
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     fromAddress(c.Address),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

func FromCustomers(customers []entities.Customer) CustomerListResponse {
	out := CustomerListResponse{Customers: make([]CustomerResponse, 0, len(customers))}
	for _, c := range customers {
		out.Customers = append(out.Customers, FromCustomer(c))
	}
	return out
}
