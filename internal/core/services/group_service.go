package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Oost-hash/Budget-sub001/internal/apperrors"
	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	portsrepo "github.com/Oost-hash/Budget-sub001/internal/core/ports/repositories"
	portssvc "github.com/Oost-hash/Budget-sub001/internal/core/ports/services"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/google/uuid"
)

// GroupService implements the category group use cases. Deleting a group
// never deletes its categories; the schema detaches them.
type GroupService struct {
	BaseService
	groupRepo portsrepo.GroupRepositoryFacade
}

var _ portssvc.GroupSvcFacade = (*GroupService)(nil)

func NewGroupService(groupRepo portsrepo.GroupRepositoryFacade) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

func (s *GroupService) CreateGroup(ctx context.Context, req dto.CreateGroupRequest, userID string) (*domain.Group, error) {
	exists, err := s.groupRepo.ExistsByName(ctx, req.Name, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to check group name uniqueness", slog.String("name", req.Name))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: group name %q already in use", apperrors.ErrConflict, req.Name)
	}

	group, err := domain.NewGroup(uuid.NewString(), req.Name, userID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.groupRepo.SaveGroup(ctx, *group); err != nil {
		s.LogError(ctx, err, "Failed to save group", slog.String("group_id", group.GroupID))
		return nil, err
	}

	s.LogInfo(ctx, "Group created", slog.String("group_id", group.GroupID))
	return group, nil
}

func (s *GroupService) GetGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find group", slog.String("group_id", groupID))
		}
		return nil, err
	}
	return group, nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	groups, err := s.groupRepo.ListGroups(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list groups")
		return nil, err
	}
	if groups == nil {
		groups = []domain.Group{}
	}
	return groups, nil
}

func (s *GroupService) RenameGroup(ctx context.Context, groupID string, req dto.RenameGroupRequest, userID string) (*domain.Group, error) {
	group, err := s.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	exists, err := s.groupRepo.ExistsByName(ctx, req.Name, groupID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: group name %q already in use", apperrors.ErrConflict, req.Name)
	}

	if err := group.Rename(req.Name, userID, time.Now()); err != nil {
		return nil, err
	}

	if err := s.groupRepo.UpdateGroup(ctx, *group); err != nil {
		s.LogError(ctx, err, "Failed to update group", slog.String("group_id", groupID))
		return nil, err
	}

	s.LogInfo(ctx, "Group renamed", slog.String("group_id", groupID))
	return group, nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, groupID string) error {
	if _, err := s.GetGroupByID(ctx, groupID); err != nil {
		return err
	}

	if err := s.groupRepo.DeleteGroup(ctx, groupID); err != nil {
		s.LogError(ctx, err, "Failed to delete group", slog.String("group_id", groupID))
		return err
	}

	s.LogInfo(ctx, "Group deleted", slog.String("group_id", groupID))
	return nil
}
