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

func newTestGroup(t *testing.T, name string) *domain.Group {
	t.Helper()
	group, err := domain.NewGroup(uuid.NewString(), name, "owner", time.Now())
	require.NoError(t, err)
	return group
}

func newTestCategory(t *testing.T, name string, groupID *string, position int) *domain.Category {
	t.Helper()
	category, err := domain.NewCategory(uuid.NewString(), name, groupID, position, "owner", time.Now())
	require.NoError(t, err)
	return category
}

func TestCreateCategory_AppendsAtEndOfScope(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockGroupRepo := new(MockGroupRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewCategoryService(mockCategoryRepo, mockGroupRepo, mockTxnRepo)

	group := newTestGroup(t, "Fixed Costs")
	groupID := group.GroupID

	mockGroupRepo.On("FindGroupByID", mock.Anything, groupID).Return(group, nil)
	mockCategoryRepo.On("ExistsByNameInGroup", mock.Anything, "Rent", &groupID, "").Return(false, nil)
	mockCategoryRepo.On("CountByGroup", mock.Anything, &groupID).Return(4, nil)
	mockCategoryRepo.On("SaveCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.Position == 5 && c.GroupID != nil && *c.GroupID == groupID
	})).Return(nil)

	category, err := service.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "Rent", GroupID: &groupID}, "owner")

	require.NoError(t, err)
	assert.Equal(t, 5, category.Position)
	mockCategoryRepo.AssertExpectations(t)
}

func TestCreateCategory_MissingGroup(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockGroupRepo := new(MockGroupRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewCategoryService(mockCategoryRepo, mockGroupRepo, mockTxnRepo)

	groupID := uuid.NewString()
	mockGroupRepo.On("FindGroupByID", mock.Anything, groupID).Return(nil, apperrors.ErrNotFound)

	_, err := service.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "Rent", GroupID: &groupID}, "owner")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	mockCategoryRepo.AssertNotCalled(t, "SaveCategory", mock.Anything, mock.Anything)
}

func TestCreateCategory_DuplicateNameInScope(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockGroupRepo := new(MockGroupRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewCategoryService(mockCategoryRepo, mockGroupRepo, mockTxnRepo)

	mockCategoryRepo.On("ExistsByNameInGroup", mock.Anything, "Rent", (*string)(nil), "").Return(true, nil)

	_, err := service.CreateCategory(context.Background(), dto.CreateCategoryRequest{Name: "Rent"}, "owner")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockCategoryRepo.AssertNotCalled(t, "SaveCategory", mock.Anything, mock.Anything)
}

func TestMoveCategory_SameScopeIsNoOp(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockGroupRepo := new(MockGroupRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewCategoryService(mockCategoryRepo, mockGroupRepo, mockTxnRepo)

	groupID := uuid.NewString()
	category := newTestCategory(t, "Rent", &groupID, 3)

	mockCategoryRepo.On("FindCategoryByID", mock.Anything, category.CategoryID).Return(category, nil)

	moved, err := service.MoveCategory(context.Background(), category.CategoryID, dto.MoveCategoryRequest{GroupID: &groupID}, "owner")

	require.NoError(t, err)
	assert.Equal(t, 3, moved.Position)
	mockCategoryRepo.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything)
	mockCategoryRepo.AssertNotCalled(t, "CountByGroup", mock.Anything, mock.Anything)
}

func TestMoveCategory_ToUngroupedAppendsAtEnd(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockGroupRepo := new(MockGroupRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewCategoryService(mockCategoryRepo, mockGroupRepo, mockTxnRepo)

	groupID := uuid.NewString()
	category := newTestCategory(t, "Rent", &groupID, 1)

	mockCategoryRepo.On("FindCategoryByID", mock.Anything, category.CategoryID).Return(category, nil)
	mockCategoryRepo.On("ExistsByNameInGroup", mock.Anything, "Rent", (*string)(nil), category.CategoryID).Return(false, nil)
	mockCategoryRepo.On("CountByGroup", mock.Anything, (*string)(nil)).Return(2, nil)
	mockCategoryRepo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c domain.Category) bool {
		return c.GroupID == nil && c.Position == 3
	})).Return(nil)

	moved, err := service.MoveCategory(context.Background(), category.CategoryID, dto.MoveCategoryRequest{}, "owner")

	require.NoError(t, err)
	assert.Nil(t, moved.GroupID)
	assert.Equal(t, 3, moved.Position)
	mockCategoryRepo.AssertExpectations(t)
}

func TestMoveCategory_NameConflictInTargetScope(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockGroupRepo := new(MockGroupRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewCategoryService(mockCategoryRepo, mockGroupRepo, mockTxnRepo)

	category := newTestCategory(t, "Rent", nil, 1)
	target := newTestGroup(t, "Fixed Costs")
	targetID := target.GroupID

	mockCategoryRepo.On("FindCategoryByID", mock.Anything, category.CategoryID).Return(category, nil)
	mockGroupRepo.On("FindGroupByID", mock.Anything, targetID).Return(target, nil)
	mockCategoryRepo.On("ExistsByNameInGroup", mock.Anything, "Rent", &targetID, category.CategoryID).Return(true, nil)

	_, err := service.MoveCategory(context.Background(), category.CategoryID, dto.MoveCategoryRequest{GroupID: &targetID}, "owner")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockCategoryRepo.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything)
}

func TestDeleteCategory_BlockedByTransactions(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockGroupRepo := new(MockGroupRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewCategoryService(mockCategoryRepo, mockGroupRepo, mockTxnRepo)

	category := newTestCategory(t, "Rent", nil, 1)

	mockCategoryRepo.On("FindCategoryByID", mock.Anything, category.CategoryID).Return(category, nil)
	mockTxnRepo.On("HasTransactionsForCategory", mock.Anything, category.CategoryID).Return(true, nil)

	err := service.DeleteCategory(context.Background(), category.CategoryID)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockCategoryRepo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
}

func TestDeleteCategory_Success(t *testing.T) {
	mockCategoryRepo := new(MockCategoryRepository)
	mockGroupRepo := new(MockGroupRepository)
	mockTxnRepo := new(MockTransactionRepository)
	service := services.NewCategoryService(mockCategoryRepo, mockGroupRepo, mockTxnRepo)

	category := newTestCategory(t, "Rent", nil, 1)

	mockCategoryRepo.On("FindCategoryByID", mock.Anything, category.CategoryID).Return(category, nil)
	mockTxnRepo.On("HasTransactionsForCategory", mock.Anything, category.CategoryID).Return(false, nil)
	mockCategoryRepo.On("DeleteCategory", mock.Anything, category.CategoryID).Return(nil)

	err := service.DeleteCategory(context.Background(), category.CategoryID)

	require.NoError(t, err)
	mockCategoryRepo.AssertExpectations(t)
}
