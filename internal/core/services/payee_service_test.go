package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	"github.com/Oost-hash/Budget-sub001/internal/core/services"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPayee(t *testing.T, name string) *domain.Payee {
	t.Helper()
	payee, err := domain.NewPayee(uuid.NewString(), name, nil, "owner", time.Now())
	require.NoError(t, err)
	return payee
}

func TestCreatePayee_Success(t *testing.T) {
	mockPayeeRepo := new(MockPayeeRepository)
	mockRuleRepo := new(MockRuleRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewPayeeService(mockPayeeRepo, mockRuleRepo, mockTxnRepo)

	mockPayeeRepo.On("ExistsByName", mock.Anything, "Energy Co", "").Return(false, nil)
	mockPayeeRepo.On("SavePayee", mock.Anything, mock.AnythingOfType("domain.Payee")).Return(nil)

	payee, err := service.CreatePayee(context.Background(), dto.CreatePayeeRequest{Name: "Energy Co"}, "owner")

	require.NoError(t, err)
	assert.Equal(t, "Energy Co", payee.Name)
	assert.Nil(t, payee.IBAN)
	mockPayeeRepo.AssertExpectations(t)
}

func TestCreatePayee_DuplicateIBAN(t *testing.T) {
	mockPayeeRepo := new(MockPayeeRepository)
	mockRuleRepo := new(MockRuleRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewPayeeService(mockPayeeRepo, mockRuleRepo, mockTxnRepo)

	iban := "NL91ABNA0417164300"
	mockPayeeRepo.On("ExistsByName", mock.Anything, "Energy Co", "").Return(false, nil)
	mockPayeeRepo.On("ExistsByIBAN", mock.Anything, iban, "").Return(true, nil)

	_, err := service.CreatePayee(context.Background(), dto.CreatePayeeRequest{Name: "Energy Co", IBAN: &iban}, "owner")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockPayeeRepo.AssertNotCalled(t, "SavePayee", mock.Anything, mock.Anything)
}

func TestUpdatePayee_ClearIBAN(t *testing.T) {
	mockPayeeRepo := new(MockPayeeRepository)
	mockRuleRepo := new(MockRuleRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewPayeeService(mockPayeeRepo, mockRuleRepo, mockTxnRepo)

	iban, err := domain.NewIBAN("NL91ABNA0417164300")
	require.NoError(t, err)
	payee, err := domain.NewPayee(uuid.NewString(), "Energy Co", &iban, "owner", time.Now())
	require.NoError(t, err)

	empty := ""
	mockPayeeRepo.On("FindPayeeByID", mock.Anything, payee.PayeeID).Return(payee, nil)
	mockPayeeRepo.On("UpdatePayee", mock.Anything, mock.MatchedBy(func(p domain.Payee) bool {
		return p.IBAN == nil
	})).Return(nil)

	updated, err := service.UpdatePayee(context.Background(), payee.PayeeID, dto.UpdatePayeeRequest{IBAN: &empty}, "owner")

	require.NoError(t, err)
	assert.Nil(t, updated.IBAN)
	mockPayeeRepo.AssertExpectations(t)
}

func TestDeletePayee_BlockedByTransactions(t *testing.T) {
	mockPayeeRepo := new(MockPayeeRepository)
	mockRuleRepo := new(MockRuleRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewPayeeService(mockPayeeRepo, mockRuleRepo, mockTxnRepo)

	payee := newTestPayee(t, "Energy Co")

	mockPayeeRepo.On("FindPayeeByID", mock.Anything, payee.PayeeID).Return(payee, nil)
	mockTxnRepo.On("HasTransactionsForPayee", mock.Anything, payee.PayeeID).Return(true, nil)

	err := service.DeletePayee(context.Background(), payee.PayeeID)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockPayeeRepo.AssertNotCalled(t, "DeletePayee", mock.Anything, mock.Anything)
}

func TestDeletePayee_BlockedByRules(t *testing.T) {
	mockPayeeRepo := new(MockPayeeRepository)
	mockRuleRepo := new(MockRuleRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewPayeeService(mockPayeeRepo, mockRuleRepo, mockTxnRepo)

	payee := newTestPayee(t, "Energy Co")
	rule, err := domain.NewRule(uuid.NewString(), payee.PayeeID, nil, nil, nil, false, nil, "owner", time.Now())
	require.NoError(t, err)

	mockPayeeRepo.On("FindPayeeByID", mock.Anything, payee.PayeeID).Return(payee, nil)
	mockTxnRepo.On("HasTransactionsForPayee", mock.Anything, payee.PayeeID).Return(false, nil)
	mockRuleRepo.On("FindByPayeeID", mock.Anything, payee.PayeeID).Return([]domain.Rule{*rule}, nil)

	err = service.DeletePayee(context.Background(), payee.PayeeID)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockPayeeRepo.AssertNotCalled(t, "DeletePayee", mock.Anything, mock.Anything)
}

func TestDeletePayee_Success(t *testing.T) {
	mockPayeeRepo := new(MockPayeeRepository)
	mockRuleRepo := new(MockRuleRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewPayeeService(mockPayeeRepo, mockRuleRepo, mockTxnRepo)

	payee := newTestPayee(t, "Energy Co")

	mockPayeeRepo.On("FindPayeeByID", mock.Anything, payee.PayeeID).Return(payee, nil)
	mockTxnRepo.On("HasTransactionsForPayee", mock.Anything, payee.PayeeID).Return(false, nil)
	mockRuleRepo.On("FindByPayeeID", mock.Anything, payee.PayeeID).Return([]domain.Rule{}, nil)
	mockPayeeRepo.On("DeletePayee", mock.Anything, payee.PayeeID).Return(nil)

	err := service.DeletePayee(context.Background(), payee.PayeeID)

	require.NoError(t, err)
	mockPayeeRepo.AssertExpectations(t)
}
