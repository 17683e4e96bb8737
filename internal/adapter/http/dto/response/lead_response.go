package response

import (
	"time"

	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase"
)

type LeadResponse struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Email                 string          `json:"email"`
	Phone                 string          `json:"phone"`
	Zip                   string          `json:"zip"`
	Address               AddressResponse `json:"address"`
	Message               string          `json:"message"`
	Status                string          `json:"status"`
	Source                string          `json:"source"`
	ContactMethod         string          `json:"contactMethod"`
	ConvertedToCustomerID string          `json:"convertedToCustomerId"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:                    l.ID,
		Name:                  l.Name,
		Email:                 l.Email,
		Phone:                 l.Phone,
		Zip:                   l.Zip,
		Address:               fromAddress(l.Address),
		Message:               l.Message,
		Status:                string(l.Status),
		Source:                l.Source,
		ContactMethod:         l.ContactMethod,
		ConvertedToCustomerID: l.ConvertedToCustomerID,
		CreatedAt:             l.CreatedAt,
		UpdatedAt:             l.UpdatedAt,
	}
}

// The dashboard's intake screens call these records "intakes".
type LeadListResponse struct {
	Intakes []LeadResponse `json:"intakes"`
}

func FromLeads(leads []entities.Lead) LeadListResponse {
	out := LeadListResponse{Intakes: make([]LeadResponse, 0, len(leads))}
	for _, l := range leads {
		out.Intakes = append(out.Intakes, FromLead(l))
	}
	return out
}

// ConversionResponse is the customer/job pair produced by converting a lead,
// alongside the updated lead itself.
type ConversionResponse struct {
	Intake   LeadResponse     `json:"intake"`
	Customer CustomerResponse `json:"customer"`
	Job      JobResponse      `json:"job"`
}

func FromConversion(r usecase.ConversionResult) ConversionResponse {
	return ConversionResponse{
		Intake:   FromLead(r.Lead),
		Customer: FromCustomer(r.Customer),
		Job:      FromJob(r.Job),
	}
}
