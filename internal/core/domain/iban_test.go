package domain_test

import (
	"testing"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIBAN(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "valid dutch iban",
			raw:  "NL91ABNA0417164300",
			want: "NL91ABNA0417164300",
		},
		{
			name: "lowercase is normalized",
			raw:  "nl91abna0417164300",
			want: "NL91ABNA0417164300",
		},
		{
			name: "surrounding whitespace is trimmed",
			raw:  "  DE89370400440532013000  ",
			want: "DE89370400440532013000",
		},
		{
			name:    "missing check digits",
			raw:     "NLXXABNA0417164300",
			wantErr: true,
		},
		{
			name:    "digits in country code",
			raw:     "1291ABNA0417164300",
			wantErr: true,
		},
		{
			name:    "inner spaces rejected",
			raw:     "NL91 ABNA 0417 1643 00",
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "too short for body",
			raw:     "NL91",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iban, err := domain.NewIBAN(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), "invalid IBAN format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, iban.String())
		})
	}
}
