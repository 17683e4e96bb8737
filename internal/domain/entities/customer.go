package entities

import (
	"strings"
	"time"
)

// Address is a customer's service address. Line2 and the finer-grained
// fields are optional; leads often arrive with only a postal code.
type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Customer is a contact/address record referenced by jobs.
//
// Storage model (DynamoDB):
//   - PK: id
type Customer struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayName formats the customer for listings, falling back to the email
// when both name parts are blank.
func (c Customer) DisplayName() string {
	name := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if name != "" {
		return name
	}
	if c.Email != "" {
		return c.Email
	}
	return "Customer"
}

// MatchesSearch reports a case-insensitive substring match over the
// customer's name, email and phone.
func (c Customer) MatchesSearch(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	hay := strings.ToLower(c.FirstName + " " + c.LastName + " " + c.Email + " " + c.Phone)
	return strings.Contains(hay, q)
}
