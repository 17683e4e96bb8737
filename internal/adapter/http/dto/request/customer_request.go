package request

import (
	"sfg_core/internal/domain/entities"
	"sfg_core/internal/usecase"
)

// CustomerCreateRequest is the standalone add-customer payload.
type CustomerCreateRequest struct {
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Address   *AddressRequest `json:"address"`
}

func (r CustomerCreateRequest) ToInput() usecase.CreateCustomerInput {
	var addr entities.Address
	if r.Address != nil {
		addr = r.Address.ToAddress()
	}
	return usecase.CreateCustomerInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   addr,
	}
}

// CustomerUpdateRequest patches contact fields; absent fields stay as is.
type CustomerUpdateRequest struct {
	FirstName *string         `json:"firstName"`
	LastName  *string         `json:"lastName"`
	Phone     *string         `json:"phone"`
	Email     *string         `json:"email"`
	Address   *AddressRequest `json:"address"`
}

func (r CustomerUpdateRequest) ToInput() usecase.UpdateCustomerInput {
	in := usecase.UpdateCustomerInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Email:     r.Email,
	}
	if r.Address != nil {
		addr := r.Address.ToAddress()
		in.Address = &addr
	}
	return in
}
