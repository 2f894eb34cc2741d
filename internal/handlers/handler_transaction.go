package handlers

import (
	"net/http"

	"github.com/Oost-hash/Budget-sub001/internal/core/domain"
	portssvc "github.com/Oost-hash/Budget-sub001/internal/core/ports/services"
	"github.com/Oost-hash/Budget-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := &transactionHandler{transactionService: transactionService}

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/income", h.createIncome)
		transactions.POST("/expense", h.createExpense)
		transactions.POST("/transfer", h.createTransfer)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createIncome godoc
// @Summary Record an income
// @Description Records money flowing into an account from a payee
// @Tags transactions
// @Accept json
// @Produce json
// @Param income body dto.CreateIncomeRequest true "Income details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/income [post]
func (h *transactionHandler) createIncome(c *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateIncome(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record income")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// createExpense godoc
// @Summary Record an expense
// @Description Records money flowing out of an account to a payee
// @Tags transactions
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/expense [post]
func (h *transactionHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// createTransfer godoc
// @Summary Record a transfer
// @Description Records money moving between two own accounts
// @Tags transactions
// @Accept json
// @Produce json
// @Param transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/transfer [post]
func (h *transactionHandler) createTransfer(c *gin.Context) {
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransfer(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to record transfer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first, optionally filtered by account
// @Tags transactions
// @Produce json
// @Param accountID query string false "Filter by account"
// @Param limit query int false "Max results" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.TransactionResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	var (
		txns []domain.Transaction
		err  error
	)
	if params.AccountID != "" {
		txns, err = h.transactionService.ListTransactionsByAccount(c.Request.Context(), params.AccountID, params)
	} else {
		txns, err = h.transactionService.ListTransactions(c.Request.Context(), params)
	}
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Updates date and description only. Type, payee, category and entries are immutable; delete and recreate to change them.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction and all of its entries atomically
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}
