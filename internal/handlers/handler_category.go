package handlers

import (
	"net/http"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	portssvc "github.com/Oost-hash/Budget-sub001/internal/core/ports/services"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := &categoryHandler{categoryService: categoryService}

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.renameCategory)
		categories.PUT("/:id/group", h.moveCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

// createCategory godoc
// @Summary Create a category
// @Description Creates a category appended at the end of its scope
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// listCategories godoc
// @Summary List all categories
// @Description Lists categories ordered by group and position; pass ungrouped=true for the ungrouped scope only
// @Tags categories
// @Produce json
// @Param ungrouped query bool false "Only ungrouped categories"
// @Success 200 {array} dto.CategoryResponse
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	var (
		categories []domain.Category
		err        error
	)
	if c.Query("ungrouped") == "true" {
		categories, err = h.categoryService.ListCategoriesByGroup(c.Request.Context(), nil)
	} else {
		categories, err = h.categoryService.ListCategories(c.Request.Context())
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// getCategory godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// renameCategory godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body dto.RenameCategoryRequest true "New name"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) renameCategory(c *gin.Context) {
	var req dto.RenameCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.RenameCategory(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to rename category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// moveCategory godoc
// @Summary Move a category to another group scope
// @Description Moves a category to the given group (or the ungrouped scope), appending it at the end
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param move body dto.MoveCategoryRequest true "Target scope"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id}/group [put]
func (h *categoryHandler) moveCategory(c *gin.Context) {
	var req dto.MoveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.MoveCategory(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to move category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes a category that no transaction references
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}
