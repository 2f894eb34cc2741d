package domain_test

import (
	"strings"
	"testing"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freqPtr(f domain.Frequency) *domain.Frequency { return &f }

func TestNewRule_RecurrencePairing(t *testing.T) {
	tests := []struct {
		name        string
		isRecurring bool
		frequency   *domain.Frequency
		wantErr     bool
	}{
		{name: "recurring monthly", isRecurring: true, frequency: freqPtr(domain.Monthly)},
		{name: "one-off without frequency", isRecurring: false, frequency: nil},
		{name: "recurring without frequency", isRecurring: true, frequency: nil, wantErr: true},
		{name: "frequency without recurring", isRecurring: false, frequency: freqPtr(domain.Weekly), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := domain.NewRule("rule-1", "payee-1", nil, nil, nil, tt.isRecurring, tt.frequency, "user-1", testNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.isRecurring, rule.IsRecurring)
			assert.Equal(t, tt.frequency, rule.Frequency)
			assert.True(t, rule.IsActive)
		})
	}
}

func TestNewRule_RequiresPayee(t *testing.T) {
	_, err := domain.NewRule("rule-1", "", nil, nil, nil, false, nil, "user-1", testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRule_DescriptionTemplateLength(t *testing.T) {
	long := strings.Repeat("x", 501)
	_, err := domain.NewRule("rule-1", "payee-1", nil, nil, &long, false, nil, "user-1", testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	ok := strings.Repeat("x", 500)
	rule, err := domain.NewRule("rule-1", "payee-1", nil, nil, &ok, false, nil, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, &ok, rule.DescriptionTemplate)
}

func TestRule_SetRecurrence(t *testing.T) {
	rule, err := domain.NewRule("rule-1", "payee-1", nil, nil, nil, false, nil, "user-1", testNow)
	require.NoError(t, err)

	err = rule.SetRecurrence(true, freqPtr(domain.Yearly), "user-1", testNow)
	require.NoError(t, err)
	assert.True(t, rule.IsRecurring)

	// The pairing invariant holds on mutation too.
	err = rule.SetRecurrence(true, nil, "user-1", testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	err = rule.SetRecurrence(false, freqPtr(domain.Monthly), "user-1", testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRule_ActivateDeactivate(t *testing.T) {
	rule, err := domain.NewRule("rule-1", "payee-1", nil, nil, nil, true, freqPtr(domain.Weekly), "user-1", testNow)
	require.NoError(t, err)

	rule.Deactivate("user-2", testNow)
	assert.False(t, rule.IsActive)
	assert.Equal(t, "user-2", rule.LastUpdatedBy)

	rule.Activate("user-1", testNow)
	assert.True(t, rule.IsActive)
}
