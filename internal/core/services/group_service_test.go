package services_test

import (
	"context"
	"testing"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/services"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateGroup_Success(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	service := services.NewGroupService(mockGroupRepo)

	mockGroupRepo.On("ExistsByName", mock.Anything, "Fixed Costs", "").Return(false, nil)
	mockGroupRepo.On("SaveGroup", mock.Anything, mock.AnythingOfType("domain.Group")).Return(nil)

	group, err := service.CreateGroup(context.Background(), dto.CreateGroupRequest{Name: "Fixed Costs"}, "owner")

	require.NoError(t, err)
	assert.Equal(t, "Fixed Costs", group.Name)
	assert.NotEmpty(t, group.GroupID)
	mockGroupRepo.AssertExpectations(t)
}

func TestCreateGroup_DuplicateName(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	service := services.NewGroupService(mockGroupRepo)

	mockGroupRepo.On("ExistsByName", mock.Anything, "Fixed Costs", "").Return(true, nil)

	_, err := service.CreateGroup(context.Background(), dto.CreateGroupRequest{Name: "Fixed Costs"}, "owner")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockGroupRepo.AssertNotCalled(t, "SaveGroup", mock.Anything, mock.Anything)
}

func TestRenameGroup_DuplicateName(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	service := services.NewGroupService(mockGroupRepo)

	group := newTestGroup(t, "Fixed Costs")

	mockGroupRepo.On("FindGroupByID", mock.Anything, group.GroupID).Return(group, nil)
	mockGroupRepo.On("ExistsByName", mock.Anything, "Variable Costs", group.GroupID).Return(true, nil)

	_, err := service.RenameGroup(context.Background(), group.GroupID, dto.RenameGroupRequest{Name: "Variable Costs"}, "owner")

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	mockGroupRepo.AssertNotCalled(t, "UpdateGroup", mock.Anything, mock.Anything)
}

func TestDeleteGroup_Success(t *testing.T) {
	mockGroupRepo := new(MockGroupRepository)
	service := services.NewGroupService(mockGroupRepo)

	group := newTestGroup(t, "Fixed Costs")

	mockGroupRepo.On("FindGroupByID", mock.Anything, group.GroupID).Return(group, nil)
	mockGroupRepo.On("DeleteGroup", mock.Anything, group.GroupID).Return(nil)

	err := service.DeleteGroup(context.Background(), group.GroupID)

	require.NoError(t, err)
	mockGroupRepo.AssertExpectations(t)
}
