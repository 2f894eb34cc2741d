package handlers

import (
	"net/http"

	portssvc "github.com/Oost-hash/Budget-sub001/internal/core/ports/services"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// groupHandler handles HTTP requests related to category groups.
type groupHandler struct {
	groupService    portssvc.GroupSvcFacade
	categoryService portssvc.CategorySvcFacade
}

// registerGroupRoutes registers routes related to groups.
func registerGroupRoutes(rg *gin.RouterGroup, groupService portssvc.GroupSvcFacade, categoryService portssvc.CategorySvcFacade) {
	h := &groupHandler{groupService: groupService, categoryService: categoryService}

	groups := rg.Group("/groups")
	{
		groups.POST("", h.createGroup)
		groups.GET("", h.listGroups)
		groups.GET("/:id", h.getGroup)
		groups.GET("/:id/categories", h.listGroupCategories)
		groups.PUT("/:id", h.renameGroup)
		groups.DELETE("/:id", h.deleteGroup)
	}
}

// createGroup godoc
// @Summary Create a category group
// @Tags groups
// @Accept json
// @Produce json
// @Param group body dto.CreateGroupRequest true "Group details"
// @Success 201 {object} dto.GroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups [post]
func (h *groupHandler) createGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create group")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGroupResponse(group))
}

// listGroups godoc
// @Summary List groups
// @Tags groups
// @Produce json
// @Success 200 {array} dto.GroupResponse
// @Security BearerAuth
// @Router /groups [get]
func (h *groupHandler) listGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list groups")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGroupResponse(groups))
}

// getGroup godoc
// @Summary Get a group by ID
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} dto.GroupResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *groupHandler) getGroup(c *gin.Context) {
	group, err := h.groupService.GetGroupByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve group")
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// listGroupCategories godoc
// @Summary List the categories of one group in display order
// @Tags groups
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {array} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{id}/categories [get]
func (h *groupHandler) listGroupCategories(c *gin.Context) {
	groupID := c.Param("id")
	if _, err := h.groupService.GetGroupByID(c.Request.Context(), groupID); err != nil {
		respondServiceError(c, err, "Failed to retrieve group")
		return
	}

	categories, err := h.categoryService.ListCategoriesByGroup(c.Request.Context(), &groupID)
	if err != nil {
		respondServiceError(c, err, "Failed to list group categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// renameGroup godoc
// @Summary Rename a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param group body dto.RenameGroupRequest true "New name"
// @Success 200 {object} dto.GroupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{id} [put]
func (h *groupHandler) renameGroup(c *gin.Context) {
	var req dto.RenameGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	group, err := h.groupService.RenameGroup(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to rename group")
		return
	}
	c.JSON(http.StatusOK, dto.ToGroupResponse(group))
}

// deleteGroup godoc
// @Summary Delete a group
// @Description Deletes a group; its categories are detached, not deleted
// @Tags groups
// @Param id path string true "Group ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /groups/{id} [delete]
func (h *groupHandler) deleteGroup(c *gin.Context) {
	if err := h.groupService.DeleteGroup(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete group")
		return
	}
	c.Status(http.StatusNoContent)
}
