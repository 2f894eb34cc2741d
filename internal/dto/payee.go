package dto

import (
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// CreatePayeeRequest defines the data needed to create a payee.
type CreatePayeeRequest struct {
	Name string  `json:"name" binding:"required"`
	IBAN *string `json:"iban"` // Optional
}

// UpdatePayeeRequest defines the data allowed for updating a payee.
// An empty IBAN string clears the IBAN.
type UpdatePayeeRequest struct {
	Name *string `json:"name"`
	IBAN *string `json:"iban"`
}

// PayeeResponse defines the data returned for a payee.
type PayeeResponse struct {
	PayeeID       string    `json:"payeeID"`
	Name          string    `json:"name"`
	IBAN          *string   `json:"iban,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToPayeeResponse converts a domain.Payee to its response DTO.
func ToPayeeResponse(p *domain.Payee) PayeeResponse {
	resp := PayeeResponse{
		PayeeID:       p.PayeeID,
		Name:          p.Name,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
	if p.IBAN != nil {
		iban := p.IBAN.String()
		resp.IBAN = &iban
	}
	return resp
}

// ToListPayeeResponse converts a slice of payees to response DTOs.
func ToListPayeeResponse(payees []domain.Payee) []PayeeResponse {
	res := make([]PayeeResponse, len(payees))
	for i := range payees {
		res[i] = ToPayeeResponse(&payees[i])
	}
	return res
}
