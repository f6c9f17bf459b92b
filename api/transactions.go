package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/in4matic/wallet-api/categories"
	"github.com/in4matic/wallet-api/dates"
	"github.com/in4matic/wallet-api/models"
	"github.com/in4matic/wallet-api/report"
)

// GetTransactions godoc
// @Summary List all transactions owned by the caller
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Transaction
// @Failure 401 {object} models.ErrorResponse
// @Router /transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	transactions, err := h.storage.GetTransactions(currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateTransaction true "Transaction data"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} models.ErrorResponse
// @Router /transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req models.CreateTransaction
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Date == "" || req.IsIncome == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide all required fields"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The amount must be positive"})
		return
	}

	date, err := dates.Normalize(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	category := req.Category
	if *req.IsIncome {
		category = categories.Income
	}
	if !categories.IsValid(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category provided. Please choose a valid category."})
		return
	}

	transaction := models.Transaction{
		UserID:   currentUser(c).ID,
		Amount:   req.Amount,
		Category: category,
		Date:     date,
		IsIncome: *req.IsIncome,
		Comment:  req.Comment,
	}
	if err := h.storage.CreateTransaction(&transaction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// loadOwned parses the id path parameter and loads the transaction, writing
// the 400/404/401 responses itself when the caller cannot touch it.
func (h *Handler) loadOwned(c *gin.Context) *models.Transaction {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction ID format"})
		return nil
	}

	transaction, err := h.storage.GetTransaction(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return nil
	}
	if transaction == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found or already deleted"})
		return nil
	}
	if transaction.UserID != currentUser(c).ID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return nil
	}
	return transaction
}

// UpdateTransaction godoc
// @Summary Partially update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param body body models.UpdateTransaction true "Fields to update"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{id} [patch]
func (h *Handler) UpdateTransaction(c *gin.Context) {
	transaction := h.loadOwned(c)
	if transaction == nil {
		return
	}

	var req models.UpdateTransaction
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "The amount must be positive"})
			return
		}
		transaction.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := dates.Normalize(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		transaction.Date = date
	}
	if req.IsIncome != nil {
		transaction.IsIncome = *req.IsIncome
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Comment != nil {
		transaction.Comment = *req.Comment
	}

	// Income rows always live under the Income category, whatever the
	// client sent.
	if transaction.IsIncome {
		transaction.Category = categories.Income
	}
	if !categories.IsValid(transaction.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category provided. Please choose a valid category."})
		return
	}

	if err := h.storage.UpdateTransaction(transaction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	transaction := h.loadOwned(c)
	if transaction == nil {
		return
	}

	if err := h.storage.DeleteTransaction(transaction.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Transaction removed"})
}

func monthYearParams(c *gin.Context) (month, year int, ok bool) {
	month, errM := strconv.Atoi(c.Param("month"))
	year, errY := strconv.Atoi(c.Param("year"))
	if errM != nil || errY != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month or year"})
		return 0, 0, false
	}
	return month, year, true
}

// FilterTransactions godoc
// @Summary List the caller's transactions for a given month and year
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} models.ErrorResponse
// @Router /transactions/{month}/{year} [get]
func (h *Handler) FilterTransactions(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	transactions, err := h.storage.GetTransactionsByMonth(currentUser(c).ID, month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetCategoryTotals godoc
// @Summary Category totals over all the caller's transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} report.Summary
// @Router /transactions/categories/totals [get]
func (h *Handler) GetCategoryTotals(c *gin.Context) {
	transactions, err := h.storage.GetTransactions(currentUser(c).ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, report.Summarize(transactions))
}

// GetFilteredCategoryTotals godoc
// @Summary Category totals scoped to a month and year
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {object} report.Summary
// @Failure 400 {object} models.ErrorResponse
// @Router /transactions/categories/{month}/{year} [get]
func (h *Handler) GetFilteredCategoryTotals(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	transactions, err := h.storage.GetTransactionsByMonth(currentUser(c).ID, month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	c.JSON(http.StatusOK, report.Summarize(transactions))
}
