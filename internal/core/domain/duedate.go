package domain

import (
	"fmt"
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
)

// ShiftDirection governs how a due date landing on a non-business day is
// resolved.
type ShiftDirection string

const (
	ShiftBefore ShiftDirection = "BEFORE"
	ShiftAfter  ShiftDirection = "AFTER"
	ShiftNone   ShiftDirection = "NONE"
)

// ParseShiftDirection converts the string form back to a ShiftDirection.
func ParseShiftDirection(s string) (ShiftDirection, error) {
	switch ShiftDirection(s) {
	case ShiftBefore, ShiftAfter, ShiftNone:
		return ShiftDirection(s), nil
	default:
		return "", fmt.Errorf("%w: unknown shift direction %q", apperrors.ErrValidation, s)
	}
}

// ExpectedPaymentDueDate records when a recurring payment is expected within a
// month and how to shift the date when it lands on a weekend.
type ExpectedPaymentDueDate struct {
	dayOfMonth     int
	shiftDirection ShiftDirection
}

// NewExpectedPaymentDueDate validates the day of month (1-31) and shift
// direction.
func NewExpectedPaymentDueDate(dayOfMonth int, shift ShiftDirection) (ExpectedPaymentDueDate, error) {
	if dayOfMonth < 1 || dayOfMonth > 31 {
		return ExpectedPaymentDueDate{}, fmt.Errorf("%w: day of month must be between 1 and 31, got %d", apperrors.ErrValidation, dayOfMonth)
	}
	if _, err := ParseShiftDirection(string(shift)); err != nil {
		return ExpectedPaymentDueDate{}, err
	}
	return ExpectedPaymentDueDate{dayOfMonth: dayOfMonth, shiftDirection: shift}, nil
}

// DayOfMonth returns the configured day (1-31).
func (d ExpectedPaymentDueDate) DayOfMonth() int { return d.dayOfMonth }

// ShiftDirection returns the configured weekend shift policy.
func (d ExpectedPaymentDueDate) ShiftDirection() ShiftDirection { return d.shiftDirection }

// ResolveIn maps the policy to a concrete date in the given month.
// The day is clamped to the month's last day (day 31 in April resolves to
// April 30), then shifted off Saturday/Sunday according to the direction.
func (d ExpectedPaymentDueDate) ResolveIn(year int, month time.Month) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := d.dayOfMonth
	if day > lastDay {
		day = lastDay
	}
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	switch d.shiftDirection {
	case ShiftBefore:
		for isWeekend(date) {
			date = date.AddDate(0, 0, -1)
		}
	case ShiftAfter:
		for isWeekend(date) {
			date = date.AddDate(0, 0, 1)
		}
	}
	return date
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
