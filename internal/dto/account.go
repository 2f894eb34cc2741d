package dto

import (
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// DueDatePayload is the wire form of an expected payment due date.
type DueDatePayload struct {
	DayOfMonth     int    `json:"dayOfMonth" binding:"required,min=1,max=31"`
	ShiftDirection string `json:"shiftDirection" binding:"required,oneof=BEFORE AFTER NONE"`
}

// ToDomain converts the payload into a validated domain value.
func (p DueDatePayload) ToDomain() (domain.ExpectedPaymentDueDate, error) {
	return domain.NewExpectedPaymentDueDate(p.DayOfMonth, domain.ShiftDirection(p.ShiftDirection))
}

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY"`
	IBAN        *string            `json:"iban"` // Optional
	IsSavings   bool               `json:"isSavings"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish fields not provided from zero-value updates. An empty
// IBAN string clears the IBAN.
type UpdateAccountRequest struct {
	Name                *string             `json:"name"`
	AccountType         *domain.AccountType `json:"accountType"`
	IBAN                *string             `json:"iban"`
	IsSavings           *bool               `json:"isSavings"`
	OverdraftLimit      *MoneyPayload       `json:"overdraftLimit"`
	CreditLimit         *MoneyPayload       `json:"creditLimit"`
	PaymentDueDate      *DueDatePayload     `json:"paymentDueDate"`
	ClearPaymentDueDate bool                `json:"clearPaymentDueDate"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	AccountType    domain.AccountType `json:"accountType"`
	IBAN           *string            `json:"iban,omitempty"`
	IsSavings      bool               `json:"isSavings"`
	OverdraftLimit MoneyPayload       `json:"overdraftLimit"`
	CreditLimit    MoneyPayload       `json:"creditLimit"`
	PaymentDueDate *DueDatePayload    `json:"paymentDueDate,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		AccountType:    acc.AccountType,
		IsSavings:      acc.IsSavings,
		OverdraftLimit: ToMoneyPayload(acc.OverdraftLimit),
		CreditLimit:    ToMoneyPayload(acc.CreditLimit),
		CreatedAt:      acc.CreatedAt,
		LastUpdatedAt:  acc.LastUpdatedAt,
	}
	if acc.IBAN != nil {
		iban := acc.IBAN.String()
		resp.IBAN = &iban
	}
	if acc.PaymentDueDate != nil {
		resp.PaymentDueDate = &DueDatePayload{
			DayOfMonth:     acc.PaymentDueDate.DayOfMonth(),
			ShiftDirection: string(acc.PaymentDueDate.ShiftDirection()),
		}
	}
	return resp
}

// ToListAccountResponse converts a slice of accounts to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}
