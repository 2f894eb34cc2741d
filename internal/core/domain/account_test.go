package domain_test

import (
	"testing"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	iban, err := domain.NewIBAN("NL91ABNA0417164300")
	require.NoError(t, err)

	acc, err := domain.NewAccount("acc-1", "Checking", domain.Asset, &iban, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "Checking", acc.Name)
	assert.Equal(t, domain.Asset, acc.AccountType)
	assert.Equal(t, "NL91ABNA0417164300", acc.IBAN.String())
	assert.True(t, acc.OverdraftLimit.IsZero())
	assert.True(t, acc.CreditLimit.IsZero())
	assert.False(t, acc.IsSavings)

	_, err = domain.NewAccount("acc-2", "", domain.Asset, nil, "user-1", testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewAccount("acc-3", "Loan", domain.AccountType("EQUITY"), nil, "user-1", testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAccount_Rename_WhitespaceOnlyFails(t *testing.T) {
	acc, err := domain.NewAccount("acc-1", "Checking", domain.Asset, nil, "user-1", testNow)
	require.NoError(t, err)
	before := acc.LastUpdatedAt

	err = acc.Rename("   \t", "user-1", testNow.Add(1))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Checking", acc.Name)
	// updatedAt is unchanged on failure.
	assert.Equal(t, before, acc.LastUpdatedAt)

	require.NoError(t, acc.Rename("  Daily  ", "user-1", testNow.Add(2)))
	assert.Equal(t, "Daily", acc.Name)
	assert.Equal(t, testNow.Add(2), acc.LastUpdatedAt)
}

func TestAccount_Mutators(t *testing.T) {
	acc, err := domain.NewAccount("acc-1", "Card", domain.Asset, nil, "user-1", testNow)
	require.NoError(t, err)
	later := testNow.Add(1)

	require.NoError(t, acc.ChangeType(domain.Liability, "user-1", later))
	assert.Equal(t, domain.Liability, acc.AccountType)

	acc.ToggleSavings("user-1", later)
	assert.True(t, acc.IsSavings)
	acc.ToggleSavings("user-1", later)
	assert.False(t, acc.IsSavings)

	limit := eur(500)
	acc.SetOverdraftLimit(limit, "user-1", later)
	eq, err := acc.OverdraftLimit.Equal(limit)
	require.NoError(t, err)
	assert.True(t, eq)

	acc.SetCreditLimit(eur(1000), "user-1", later)
	assert.True(t, acc.CreditLimit.IsPositive())

	due, err := domain.NewExpectedPaymentDueDate(25, domain.ShiftBefore)
	require.NoError(t, err)
	acc.SetPaymentDueDate(&due, "user-1", later)
	require.NotNil(t, acc.PaymentDueDate)
	assert.Equal(t, 25, acc.PaymentDueDate.DayOfMonth())

	acc.SetPaymentDueDate(nil, "user-1", later)
	assert.Nil(t, acc.PaymentDueDate)

	iban, err := domain.NewIBAN("de89370400440532013000")
	require.NoError(t, err)
	acc.ChangeIBAN(&iban, "user-1", later)
	assert.Equal(t, "DE89370400440532013000", acc.IBAN.String())
}

func TestGroup_Rename(t *testing.T) {
	grp, err := domain.NewGroup("group-1", "Fixed costs", "user-1", testNow)
	require.NoError(t, err)

	err = grp.Rename("", "user-1", testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Fixed costs", grp.Name)

	require.NoError(t, grp.Rename("Monthly", "user-1", testNow))
	assert.Equal(t, "Monthly", grp.Name)
}

func TestPayee_RenameAndIBAN(t *testing.T) {
	payee, err := domain.NewPayee("payee-1", "Landlord", nil, "user-1", testNow)
	require.NoError(t, err)

	err = payee.Rename(" ", "user-1", testNow)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Landlord", payee.Name)

	iban, err := domain.NewIBAN("FR1420041010050500013M02606")
	require.NoError(t, err)
	payee.ChangeIBAN(&iban, "user-1", testNow)
	require.NotNil(t, payee.IBAN)
	assert.Equal(t, "FR1420041010050500013M02606", payee.IBAN.String())
}
