package dto

import (
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
)

// CreateRuleRequest defines the data needed to create a rule.
// A recurring rule must carry a frequency and vice versa.
type CreateRuleRequest struct {
	PayeeID             string        `json:"payeeID" binding:"required"`
	CategoryID          *string       `json:"categoryID"`
	Amount              *MoneyPayload `json:"amount"`
	DescriptionTemplate *string       `json:"descriptionTemplate"`
	IsRecurring         bool          `json:"isRecurring"`
	Frequency           *string       `json:"frequency" binding:"omitempty,oneof=WEEKLY MONTHLY YEARLY"`
}

// UpdateRuleRequest defines the data allowed for updating a rule's pattern.
// Clear flags distinguish "remove this field" from "leave it unchanged".
type UpdateRuleRequest struct {
	CategoryID               *string       `json:"categoryID"`
	ClearCategory            bool          `json:"clearCategory"`
	Amount                   *MoneyPayload `json:"amount"`
	ClearAmount              bool          `json:"clearAmount"`
	DescriptionTemplate      *string       `json:"descriptionTemplate"`
	ClearDescriptionTemplate bool          `json:"clearDescriptionTemplate"`
	IsRecurring              *bool         `json:"isRecurring"`
	Frequency                *string       `json:"frequency" binding:"omitempty,oneof=WEEKLY MONTHLY YEARLY"`
	IsActive                 *bool         `json:"isActive"`
}

// RuleResponse defines the data returned for a rule.
type RuleResponse struct {
	RuleID              string        `json:"ruleID"`
	PayeeID             string        `json:"payeeID"`
	CategoryID          *string       `json:"categoryID,omitempty"`
	Amount              *MoneyPayload `json:"amount,omitempty"`
	DescriptionTemplate *string       `json:"descriptionTemplate,omitempty"`
	IsRecurring         bool          `json:"isRecurring"`
	Frequency           *string       `json:"frequency,omitempty"`
	IsActive            bool          `json:"isActive"`
	CreatedAt           time.Time     `json:"createdAt"`
	LastUpdatedAt       time.Time     `json:"lastUpdatedAt"`
}

// ToRuleResponse converts a domain.Rule to its response DTO.
func ToRuleResponse(r *domain.Rule) RuleResponse {
	resp := RuleResponse{
		RuleID:              r.RuleID,
		PayeeID:             r.PayeeID,
		CategoryID:          r.CategoryID,
		DescriptionTemplate: r.DescriptionTemplate,
		IsRecurring:         r.IsRecurring,
		IsActive:            r.IsActive,
		CreatedAt:           r.CreatedAt,
		LastUpdatedAt:       r.LastUpdatedAt,
	}
	if r.Amount != nil {
		amount := ToMoneyPayload(*r.Amount)
		resp.Amount = &amount
	}
	if r.Frequency != nil {
		freq := r.Frequency.String()
		resp.Frequency = &freq
	}
	return resp
}

// ToListRuleResponse converts a slice of rules to response DTOs.
func ToListRuleResponse(rules []domain.Rule) []RuleResponse {
	res := make([]RuleResponse, len(rules))
	for i := range rules {
		res[i] = ToRuleResponse(&rules[i])
	}
	return res
}
