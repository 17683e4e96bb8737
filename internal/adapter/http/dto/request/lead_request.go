package request

import (
	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase"
)

// LeadCreateRequest is the dashboard "Add lead" payload. Name is the only
// required field; public intake forms often omit everything else.
type LeadCreateRequest struct {
	Name          string          `json:"name" binding:"required"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Zip           string          `json:"zip"`
	Address       *AddressRequest `json:"address"`
	Message       string          `json:"message"`
	Source        string          `json:"source"`
	ContactMethod string          `json:"contactMethod"`
}

func (r LeadCreateRequest) ToInput() usecase.CreateLeadInput {
	var addr entities.Address
	if r.Address != nil {
		addr = r.Address.ToAddress()
	}
	return usecase.CreateLeadInput{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Zip:           r.Zip,
		Address:       addr,
		Message:       r.Message,
		Source:        r.Source,
		ContactMethod: r.ContactMethod,
	}
}

// LeadUpdateRequest patches a lead; absent fields stay as is.
type LeadUpdateRequest struct {
	Status        *string         `json:"status"`
	Name          *string         `json:"name"`
	Email         *string         `json:"email"`
	Phone         *string         `json:"phone"`
	Zip           *string         `json:"zip"`
	Address       *AddressRequest `json:"address"`
	Message       *string         `json:"message"`
	ContactMethod *string         `json:"contactMethod"`
}

func (r LeadUpdateRequest) ToInput() usecase.UpdateLeadInput {
	in := usecase.UpdateLeadInput{
		Status:        r.Status,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Zip:           r.Zip,
		Message:       r.Message,
		ContactMethod: r.ContactMethod,
	}
	if r.Address != nil {
		addr := r.Address.ToAddress()
		in.Address = &addr
	}
	return in
}

// LeadConvertRequest carries optional booking-form edits applied during
// conversion. An empty body is valid.
type LeadConvertRequest struct {
	ScheduledDay  string          `json:"scheduledDay"`
	TimeBlock     string          `json:"timeBlock"`
	Address       *AddressRequest `json:"address"`
	ContactMethod *string         `json:"contactMethod"`
}

func (r LeadConvertRequest) ToInput() usecase.ConvertLeadInput {
	in := usecase.ConvertLeadInput{
		ScheduledDay:  r.ScheduledDay,
		TimeBlock:     r.TimeBlock,
		ContactMethod: r.ContactMethod,
	}
	if r.Address != nil {
		addr := r.Address.ToAddress()
		in.Address = &addr
	}
	return in
}
