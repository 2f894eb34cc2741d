package domain

import (
	"fmt"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
)

// Frequency is the closed set of recurrence cadences a rule can declare.
type Frequency string

const (
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

// ParseFrequency converts the string form back to a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case Weekly, Monthly, Yearly:
		return Frequency(s), nil
	default:
		return "", fmt.Errorf("%w: unknown frequency %q", apperrors.ErrValidation, s)
	}
}

// String returns the canonical string form.
func (f Frequency) String() string { return string(f) }
