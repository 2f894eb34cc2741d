package domain_test

import (
	"testing"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	for _, valid := range []string{"WEEKLY", "MONTHLY", "YEARLY"} {
		f, err := domain.ParseFrequency(valid)
		require.NoError(t, err)
		// Round-trips through its string form.
		assert.Equal(t, valid, f.String())
	}

	for _, invalid := range []string{"", "weekly", "DAILY", "MONTH"} {
		_, err := domain.ParseFrequency(invalid)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}
