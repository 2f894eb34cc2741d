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

// CategoryService implements the category use cases. Positions are dense
// 1-based per scope on insert; deletions leave gaps that stay until a later
// move or insert, relative order is what matters.
type CategoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
	groupRepo    portsrepo.GroupReader
	txnReader    portsrepo.TransactionReader
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, groupRepo portsrepo.GroupReader, txnReader portsrepo.TransactionReader) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, groupRepo: groupRepo, txnReader: txnReader}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID string) (*domain.Category, error) {
	if err := s.ensureGroupExists(ctx, req.GroupID); err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsByNameInGroup(ctx, req.Name, req.GroupID, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to check category name uniqueness", slog.String("name", req.Name))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: category name %q already in use in this scope", apperrors.ErrConflict, req.Name)
	}

	count, err := s.categoryRepo.CountByGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	category, err := domain.NewCategory(uuid.NewString(), req.Name, req.GroupID, count+1, userID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.SaveCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID), slog.Int("position", category.Position))
	return category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *CategoryService) ListCategoriesByGroup(ctx context.Context, groupID *string) ([]domain.Category, error) {
	var (
		categories []domain.Category
		err        error
	)
	if groupID == nil {
		categories, err = s.categoryRepo.FindWithoutGroup(ctx)
	} else {
		categories, err = s.categoryRepo.FindByGroupID(ctx, *groupID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories by group")
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

func (s *CategoryService) RenameCategory(ctx context.Context, categoryID string, req dto.RenameCategoryRequest, userID string) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsByNameInGroup(ctx, req.Name, category.GroupID, categoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: category name %q already in use in this scope", apperrors.ErrConflict, req.Name)
	}

	if err := category.Rename(req.Name, userID, time.Now()); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category renamed", slog.String("category_id", categoryID))
	return category, nil
}

func (s *CategoryService) MoveCategory(ctx context.Context, categoryID string, req dto.MoveCategoryRequest, userID string) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	// Moving into the scope the category already occupies changes nothing,
	// not even the position.
	if category.InScope(req.GroupID) {
		return category, nil
	}

	if err := s.ensureGroupExists(ctx, req.GroupID); err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsByNameInGroup(ctx, category.Name, req.GroupID, categoryID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: category name %q already in use in the target scope", apperrors.ErrConflict, category.Name)
	}

	count, err := s.categoryRepo.CountByGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.GroupID == nil {
		err = category.RemoveFromGroup(count+1, userID, now)
	} else {
		err = category.AssignToGroup(*req.GroupID, count+1, userID, now)
	}
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to move category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category moved", slog.String("category_id", categoryID), slog.Int("position", category.Position))
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if _, err := s.GetCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	referenced, err := s.txnReader.HasTransactionsForCategory(ctx, categoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check category references", slog.String("category_id", categoryID))
		return err
	}
	if referenced {
		return fmt.Errorf("%w: category is referenced by transactions", apperrors.ErrConflict)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}

	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}

func (s *CategoryService) ensureGroupExists(ctx context.Context, groupID *string) error {
	if groupID == nil {
		return nil
	}
	if _, err := s.groupRepo.FindGroupByID(ctx, *groupID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: group %s does not exist", apperrors.ErrValidation, *groupID)
		}
		return err
	}
	return nil
}
