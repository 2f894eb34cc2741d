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

func TestCreateRule_RecurringWithFrequency(t *testing.T) {
	mockRuleRepo := new(MockRuleRepository)
	mockPayeeRepo := new(MockPayeeRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := services.NewRuleService(mockRuleRepo, mockPayeeRepo, mockCategoryRepo)

	payee := newTestPayee(t, "Landlord")
	frequency := "MONTHLY"

	mockPayeeRepo.On("FindPayeeByID", mock.Anything, payee.PayeeID).Return(payee, nil)
	mockRuleRepo.On("SaveRule", mock.Anything, mock.AnythingOfType("domain.Rule")).Return(nil)

	rule, err := service.CreateRule(context.Background(), dto.CreateRuleRequest{
		PayeeID:     payee.PayeeID,
		IsRecurring: true,
		Frequency:   &frequency,
	}, "owner")

	require.NoError(t, err)
	assert.True(t, rule.IsRecurring)
	require.NotNil(t, rule.Frequency)
	assert.Equal(t, domain.Monthly, *rule.Frequency)
	assert.True(t, rule.IsActive)
	mockRuleRepo.AssertExpectations(t)
}

func TestCreateRule_RecurringWithoutFrequency(t *testing.T) {
	mockRuleRepo := new(MockRuleRepository)
	mockPayeeRepo := new(MockPayeeRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := services.NewRuleService(mockRuleRepo, mockPayeeRepo, mockCategoryRepo)

	payee := newTestPayee(t, "Landlord")
	mockPayeeRepo.On("FindPayeeByID", mock.Anything, payee.PayeeID).Return(payee, nil)

	_, err := service.CreateRule(context.Background(), dto.CreateRuleRequest{
		PayeeID:     payee.PayeeID,
		IsRecurring: true,
	}, "owner")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRuleRepo.AssertNotCalled(t, "SaveRule", mock.Anything, mock.Anything)
}

func TestCreateRule_MissingPayee(t *testing.T) {
	mockRuleRepo := new(MockRuleRepository)
	mockPayeeRepo := new(MockPayeeRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := services.NewRuleService(mockRuleRepo, mockPayeeRepo, mockCategoryRepo)

	payeeID := uuid.NewString()
	mockPayeeRepo.On("FindPayeeByID", mock.Anything, payeeID).Return(nil, apperrors.ErrNotFound)

	_, err := service.CreateRule(context.Background(), dto.CreateRuleRequest{PayeeID: payeeID}, "owner")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockRuleRepo.AssertNotCalled(t, "SaveRule", mock.Anything, mock.Anything)
}

func TestUpdateRule_StopRecurrenceDropsFrequency(t *testing.T) {
	mockRuleRepo := new(MockRuleRepository)
	mockPayeeRepo := new(MockPayeeRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := services.NewRuleService(mockRuleRepo, mockPayeeRepo, mockCategoryRepo)

	frequency := domain.Monthly
	rule, err := domain.NewRule(uuid.NewString(), uuid.NewString(), nil, nil, nil, true, &frequency, "owner", time.Now())
	require.NoError(t, err)

	notRecurring := false
	mockRuleRepo.On("FindRuleByID", mock.Anything, rule.RuleID).Return(rule, nil)
	mockRuleRepo.On("UpdateRule", mock.Anything, mock.MatchedBy(func(r domain.Rule) bool {
		return !r.IsRecurring && r.Frequency == nil
	})).Return(nil)

	updated, err := service.UpdateRule(context.Background(), rule.RuleID, dto.UpdateRuleRequest{IsRecurring: &notRecurring}, "owner")

	require.NoError(t, err)
	assert.False(t, updated.IsRecurring)
	assert.Nil(t, updated.Frequency)
	mockRuleRepo.AssertExpectations(t)
}

func TestUpdateRule_ClearCategory(t *testing.T) {
	mockRuleRepo := new(MockRuleRepository)
	mockPayeeRepo := new(MockPayeeRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := services.NewRuleService(mockRuleRepo, mockPayeeRepo, mockCategoryRepo)

	categoryID := uuid.NewString()
	rule, err := domain.NewRule(uuid.NewString(), uuid.NewString(), &categoryID, nil, nil, false, nil, "owner", time.Now())
	require.NoError(t, err)

	mockRuleRepo.On("FindRuleByID", mock.Anything, rule.RuleID).Return(rule, nil)
	mockRuleRepo.On("UpdateRule", mock.Anything, mock.MatchedBy(func(r domain.Rule) bool {
		return r.CategoryID == nil
	})).Return(nil)

	updated, err := service.UpdateRule(context.Background(), rule.RuleID, dto.UpdateRuleRequest{ClearCategory: true}, "owner")

	require.NoError(t, err)
	assert.Nil(t, updated.CategoryID)
	mockCategoryRepo.AssertNotCalled(t, "FindCategoryByID", mock.Anything, mock.Anything)
	mockRuleRepo.AssertExpectations(t)
}

func TestUpdateRule_Deactivate(t *testing.T) {
	mockRuleRepo := new(MockRuleRepository)
	mockPayeeRepo := new(MockPayeeRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := services.NewRuleService(mockRuleRepo, mockPayeeRepo, mockCategoryRepo)

	rule, err := domain.NewRule(uuid.NewString(), uuid.NewString(), nil, nil, nil, false, nil, "owner", time.Now())
	require.NoError(t, err)

	inactive := false
	mockRuleRepo.On("FindRuleByID", mock.Anything, rule.RuleID).Return(rule, nil)
	mockRuleRepo.On("UpdateRule", mock.Anything, mock.MatchedBy(func(r domain.Rule) bool {
		return !r.IsActive
	})).Return(nil)

	updated, err := service.UpdateRule(context.Background(), rule.RuleID, dto.UpdateRuleRequest{IsActive: &inactive}, "owner")

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	mockRuleRepo.AssertExpectations(t)
}

func TestDeleteRule_Success(t *testing.T) {
	mockRuleRepo := new(MockRuleRepository)
	mockPayeeRepo := new(MockPayeeRepository)
	mockCategoryRepo := new(MockCategoryRepository)
	service := services.NewRuleService(mockRuleRepo, mockPayeeRepo, mockCategoryRepo)

	rule, err := domain.NewRule(uuid.NewString(), uuid.NewString(), nil, nil, nil, false, nil, "owner", time.Now())
	require.NoError(t, err)

	mockRuleRepo.On("FindRuleByID", mock.Anything, rule.RuleID).Return(rule, nil)
	mockRuleRepo.On("DeleteRule", mock.Anything, rule.RuleID).Return(nil)

	err = service.DeleteRule(context.Background(), rule.RuleID)

	require.NoError(t, err)
	mockRuleRepo.AssertExpectations(t)
}
