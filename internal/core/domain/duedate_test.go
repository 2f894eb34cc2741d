package domain_test

import (
	"testing"
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpectedPaymentDueDate(t *testing.T) {
	tests := []struct {
		name    string
		day     int
		shift   domain.ShiftDirection
		wantErr bool
	}{
		{name: "first of month", day: 1, shift: domain.ShiftNone},
		{name: "last possible day", day: 31, shift: domain.ShiftBefore},
		{name: "mid month after", day: 15, shift: domain.ShiftAfter},
		{name: "day zero", day: 0, shift: domain.ShiftNone, wantErr: true},
		{name: "day 32", day: 32, shift: domain.ShiftNone, wantErr: true},
		{name: "negative day", day: -1, shift: domain.ShiftNone, wantErr: true},
		{name: "bad shift", day: 10, shift: domain.ShiftDirection("SIDEWAYS"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := domain.NewExpectedPaymentDueDate(tt.day, tt.shift)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.day, due.DayOfMonth())
			assert.Equal(t, tt.shift, due.ShiftDirection())
		})
	}
}

func TestExpectedPaymentDueDate_ResolveIn(t *testing.T) {
	tests := []struct {
		name  string
		day   int
		shift domain.ShiftDirection
		year  int
		month time.Month
		want  time.Time
	}{
		{
			// 2026-08-15 is a Saturday.
			name: "none leaves weekend date alone",
			day:  15, shift: domain.ShiftNone,
			year: 2026, month: time.August,
			want: time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "before shifts saturday to friday",
			day:  15, shift: domain.ShiftBefore,
			year: 2026, month: time.August,
			want: time.Date(2026, time.August, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "after shifts saturday to monday",
			day:  15, shift: domain.ShiftAfter,
			year: 2026, month: time.August,
			want: time.Date(2026, time.August, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			// April has 30 days; 2026-04-30 is a Thursday.
			name: "day 31 clamps to month end",
			day:  31, shift: domain.ShiftNone,
			year: 2026, month: time.April,
			want: time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			// 2026-02-28 is a Saturday; clamp then shift.
			name: "clamp then shift before",
			day:  31, shift: domain.ShiftBefore,
			year: 2026, month: time.February,
			want: time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC),
		},
		{
			// 2026-06-10 is a Wednesday, no shift needed either way.
			name: "weekday untouched",
			day:  10, shift: domain.ShiftAfter,
			year: 2026, month: time.June,
			want: time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := domain.NewExpectedPaymentDueDate(tt.day, tt.shift)
			require.NoError(t, err)
			assert.Equal(t, tt.want, due.ResolveIn(tt.year, tt.month))
		})
	}
}
