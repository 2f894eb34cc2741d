package handlers

import (
	"net/http"

	portssvc "github.com/Oost-hash/Budget-sub001/internal/core/ports/services"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// ruleHandler handles HTTP requests related to payee rules.
type ruleHandler struct {
	ruleService portssvc.RuleSvcFacade
}

// registerRuleRoutes registers routes related to rules.
func registerRuleRoutes(rg *gin.RouterGroup, ruleService portssvc.RuleSvcFacade) {
	h := &ruleHandler{ruleService: ruleService}

	rules := rg.Group("/rules")
	{
		rules.POST("", h.createRule)
		rules.GET("", h.listRules)
		rules.GET("/:id", h.getRule)
		rules.PUT("/:id", h.updateRule)
		rules.DELETE("/:id", h.deleteRule)
	}
}

// createRule godoc
// @Summary Create a rule
// @Description Creates a matching or recurrence rule for a payee
// @Tags rules
// @Accept json
// @Produce json
// @Param rule body dto.CreateRuleRequest true "Rule details"
// @Success 201 {object} dto.RuleResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /rules [post]
func (h *ruleHandler) createRule(c *gin.Context) {
	var req dto.CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rule, err := h.ruleService.CreateRule(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create rule")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRuleResponse(rule))
}

// listRules godoc
// @Summary List rules
// @Description Lists all rules; pass recurring=true for the recurring subset
// @Tags rules
// @Produce json
// @Param recurring query bool false "Only recurring rules"
// @Success 200 {array} dto.RuleResponse
// @Security BearerAuth
// @Router /rules [get]
func (h *ruleHandler) listRules(c *gin.Context) {
	var (
		rules []dto.RuleResponse
		err   error
	)
	if c.Query("recurring") == "true" {
		res, lerr := h.ruleService.ListRecurringRules(c.Request.Context())
		err = lerr
		if err == nil {
			rules = dto.ToListRuleResponse(res)
		}
	} else {
		res, lerr := h.ruleService.ListRules(c.Request.Context())
		err = lerr
		if err == nil {
			rules = dto.ToListRuleResponse(res)
		}
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list rules")
		return
	}
	c.JSON(http.StatusOK, rules)
}

// getRule godoc
// @Summary Get a rule by ID
// @Tags rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} dto.RuleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rules/{id} [get]
func (h *ruleHandler) getRule(c *gin.Context) {
	rule, err := h.ruleService.GetRuleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

// updateRule godoc
// @Summary Update a rule
// @Tags rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param rule body dto.UpdateRuleRequest true "Fields to update"
// @Success 200 {object} dto.RuleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rules/{id} [put]
func (h *ruleHandler) updateRule(c *gin.Context) {
	var req dto.UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rule, err := h.ruleService.UpdateRule(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToRuleResponse(rule))
}

// deleteRule godoc
// @Summary Delete a rule
// @Tags rules
// @Param id path string true "Rule ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /rules/{id} [delete]
func (h *ruleHandler) deleteRule(c *gin.Context) {
	if err := h.ruleService.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete rule")
		return
	}
	c.Status(http.StatusNoContent)
}
