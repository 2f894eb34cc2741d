package domain

import (
	"fmt"
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
)

// maxRuleDescriptionLen bounds the description template length.
const maxRuleDescriptionLen = 500

// Rule is a recurring-payment template binding a payee to an optional
// category, amount and description pattern. Rules describe recurrence;
// nothing in this system schedules or executes them.
//
// Invariant: IsRecurring is true if and only if Frequency is present.
type Rule struct {
	RuleID              string     `json:"ruleID"` // Primary Key (UUID)
	PayeeID             string     `json:"payeeID"`
	CategoryID          *string    `json:"categoryID,omitempty"`
	Amount              *Money     `json:"amount,omitempty"`
	DescriptionTemplate *string    `json:"descriptionTemplate,omitempty"`
	IsRecurring         bool       `json:"isRecurring"`
	Frequency           *Frequency `json:"frequency,omitempty"`
	IsActive            bool       `json:"isActive"`
	AuditFields
}

// NewRule constructs a validated rule.
func NewRule(id, payeeID string, categoryID *string, amount *Money, descriptionTemplate *string, isRecurring bool, frequency *Frequency, userID string, now time.Time) (*Rule, error) {
	if payeeID == "" {
		return nil, fmt.Errorf("%w: rule must reference a payee", apperrors.ErrValidation)
	}
	if err := validateRecurrence(isRecurring, frequency); err != nil {
		return nil, err
	}
	if err := validateDescriptionTemplate(descriptionTemplate); err != nil {
		return nil, err
	}
	return &Rule{
		RuleID:              id,
		PayeeID:             payeeID,
		CategoryID:          categoryID,
		Amount:              amount,
		DescriptionTemplate: descriptionTemplate,
		IsRecurring:         isRecurring,
		Frequency:           frequency,
		IsActive:            true,
		AuditFields: AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// UpdatePattern replaces the optional matching pattern fields.
func (r *Rule) UpdatePattern(categoryID *string, amount *Money, descriptionTemplate *string, userID string, now time.Time) error {
	if err := validateDescriptionTemplate(descriptionTemplate); err != nil {
		return err
	}
	r.CategoryID = categoryID
	r.Amount = amount
	r.DescriptionTemplate = descriptionTemplate
	r.Touch(userID, now)
	return nil
}

// SetRecurrence changes the recurring flag and frequency together, keeping
// the pairing invariant intact.
func (r *Rule) SetRecurrence(isRecurring bool, frequency *Frequency, userID string, now time.Time) error {
	if err := validateRecurrence(isRecurring, frequency); err != nil {
		return err
	}
	r.IsRecurring = isRecurring
	r.Frequency = frequency
	r.Touch(userID, now)
	return nil
}

// Activate marks the rule active.
func (r *Rule) Activate(userID string, now time.Time) {
	r.IsActive = true
	r.Touch(userID, now)
}

// Deactivate marks the rule inactive.
func (r *Rule) Deactivate(userID string, now time.Time) {
	r.IsActive = false
	r.Touch(userID, now)
}

// validateRecurrence enforces the bidirectional pairing: recurring requires a
// frequency, and a frequency requires recurring.
func validateRecurrence(isRecurring bool, frequency *Frequency) error {
	if isRecurring && frequency == nil {
		return fmt.Errorf("%w: recurring rule requires a frequency", apperrors.ErrValidation)
	}
	if !isRecurring && frequency != nil {
		return fmt.Errorf("%w: frequency is only allowed on recurring rules", apperrors.ErrValidation)
	}
	if frequency != nil {
		if _, err := ParseFrequency(string(*frequency)); err != nil {
			return err
		}
	}
	return nil
}

func validateDescriptionTemplate(t *string) error {
	if t != nil && len(*t) > maxRuleDescriptionLen {
		return fmt.Errorf("%w: description template exceeds %d characters", apperrors.ErrValidation, maxRuleDescriptionLen)
	}
	return nil
}
