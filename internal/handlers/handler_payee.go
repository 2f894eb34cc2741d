package handlers

import (
	"net/http"

	portssvc "github.com/Oost-hash/Budget-sub001/internal/core/ports/services"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// payeeHandler handles HTTP requests related to payees.
type payeeHandler struct {
	payeeService portssvc.PayeeSvcFacade
	ruleService  portssvc.RuleSvcFacade
}

// registerPayeeRoutes registers routes related to payees.
func registerPayeeRoutes(rg *gin.RouterGroup, payeeService portssvc.PayeeSvcFacade, ruleService portssvc.RuleSvcFacade) {
	h := &payeeHandler{payeeService: payeeService, ruleService: ruleService}

	payees := rg.Group("/payees")
	{
		payees.POST("", h.createPayee)
		payees.GET("", h.listPayees)
		payees.GET("/:id", h.getPayee)
		payees.GET("/:id/rules", h.listPayeeRules)
		payees.PUT("/:id", h.updatePayee)
		payees.DELETE("/:id", h.deletePayee)
	}
}

// createPayee godoc
// @Summary Create a payee
// @Tags payees
// @Accept json
// @Produce json
// @Param payee body dto.CreatePayeeRequest true "Payee details"
// @Success 201 {object} dto.PayeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payees [post]
func (h *payeeHandler) createPayee(c *gin.Context) {
	var req dto.CreatePayeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payee, err := h.payeeService.CreatePayee(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create payee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayeeResponse(payee))
}

// listPayees godoc
// @Summary List payees
// @Tags payees
// @Produce json
// @Success 200 {array} dto.PayeeResponse
// @Security BearerAuth
// @Router /payees [get]
func (h *payeeHandler) listPayees(c *gin.Context) {
	payees, err := h.payeeService.ListPayees(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list payees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPayeeResponse(payees))
}

// getPayee godoc
// @Summary Get a payee by ID
// @Tags payees
// @Produce json
// @Param id path string true "Payee ID"
// @Success 200 {object} dto.PayeeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payees/{id} [get]
func (h *payeeHandler) getPayee(c *gin.Context) {
	payee, err := h.payeeService.GetPayeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve payee")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayeeResponse(payee))
}

// listPayeeRules godoc
// @Summary List the rules bound to a payee
// @Tags payees
// @Produce json
// @Param id path string true "Payee ID"
// @Success 200 {array} dto.RuleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /payees/{id}/rules [get]
func (h *payeeHandler) listPayeeRules(c *gin.Context) {
	payeeID := c.Param("id")
	if _, err := h.payeeService.GetPayeeByID(c.Request.Context(), payeeID); err != nil {
		respondServiceError(c, err, "Failed to retrieve payee")
		return
	}

	rules, err := h.ruleService.ListRulesByPayee(c.Request.Context(), payeeID)
	if err != nil {
		respondServiceError(c, err, "Failed to list payee rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRuleResponse(rules))
}

// updatePayee godoc
// @Summary Update a payee
// @Tags payees
// @Accept json
// @Produce json
// @Param id path string true "Payee ID"
// @Param payee body dto.UpdatePayeeRequest true "Fields to update"
// @Success 200 {object} dto.PayeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payees/{id} [put]
func (h *payeeHandler) updatePayee(c *gin.Context) {
	var req dto.UpdatePayeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payee, err := h.payeeService.UpdatePayee(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update payee")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayeeResponse(payee))
}

// deletePayee godoc
// @Summary Delete a payee
// @Description Deletes a payee that no transaction or rule references
// @Tags payees
// @Param id path string true "Payee ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /payees/{id} [delete]
func (h *payeeHandler) deletePayee(c *gin.Context) {
	if err := h.payeeService.DeletePayee(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete payee")
		return
	}
	c.Status(http.StatusNoContent)
}
