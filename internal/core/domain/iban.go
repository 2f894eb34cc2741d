package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
)

// ibanPattern is a structural check only: two letters (country), two digits
// (check digits), then alphanumerics. No mod-97 checksum validation.
var ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)

// IBAN is a validated, normalized bank account identifier.
type IBAN struct {
	value string
}

// NewIBAN normalizes the raw input (trim, uppercase) and validates it against
// the structural IBAN pattern.
func NewIBAN(raw string) (IBAN, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !ibanPattern.MatchString(normalized) {
		return IBAN{}, fmt.Errorf("%w: invalid IBAN format", apperrors.ErrValidation)
	}
	return IBAN{value: normalized}, nil
}

// String returns the normalized IBAN.
func (i IBAN) String() string { return i.value }
