package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "duitku/internal/errors"
	"duitku/internal/models"
	"duitku/internal/pagination"
	"duitku/internal/query"
	"duitku/internal/store"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(s *store.Store) *TransactionHandler {
	return &TransactionHandler{store: s}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      int64                  `json:"amount" binding:"required,gt=0"`
	Category    string                 `json:"category" binding:"required"`
	Description string                 `json:"description" binding:"required,max=500"`
	Date        string                 `json:"date" binding:"required"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Create a new income or expense record
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseFlexibleTime(req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	transaction, err := h.store.Add(models.TransactionInput{
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// ListTransactionsQuery holds the bindable list parameters. Filter fields
// not expressible as simple form bindings are parsed by hand below.
type ListTransactionsQuery struct {
	Type      string `form:"type" binding:"omitempty,transaction_type"`
	Category  string `form:"category"`
	Q         string `form:"q"`
	Window    string `form:"window" binding:"omitempty,date_window"`
	SortBy    string `form:"sort_by" binding:"omitempty,sort_field"`
	SortOrder string `form:"order" binding:"omitempty,sort_order"`
}

// ListTransactions handles the filtered, sorted, paginated transaction list
// @Summary     List transactions
// @Description List transactions with optional filters, sorting, and pagination
// @Tags        transactions
// @Produce     json
// @Param       type       query string false "Filter by type (income, expense)"
// @Param       category   query string false "Filter by category id"
// @Param       q          query string false "Case-insensitive text match on description or category"
// @Param       window     query string false "Named recency window (today, week, month, year); ignored when date bounds are set"
// @Param       date_from  query string false "Inclusive start date (RFC3339 or YYYY-MM-DD)"
// @Param       date_to    query string false "Inclusive end date (RFC3339 or YYYY-MM-DD)"
// @Param       min_amount query int    false "Inclusive minimum amount"
// @Param       max_amount query int    false "Inclusive maximum amount"
// @Param       sort_by    query string false "Sort field (date, amount, category); default date"
// @Param       order      query string false "Sort order (asc, desc); default desc"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var params ListTransactionsQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	criteria, err := buildCriteria(c, params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records := query.Filter(h.store.List(), criteria)

	sortBy := query.SortField(params.SortBy)
	if params.SortBy == "" {
		sortBy = query.SortByDate
	}
	order := query.SortOrder(params.SortOrder)
	if params.SortOrder == "" {
		order = query.SortDesc
	}
	records = query.Sort(records, sortBy, order)

	c.JSON(http.StatusOK, pagination.Paginate(records, page))
}

func buildCriteria(c *gin.Context, params ListTransactionsQuery) (query.Criteria, error) {
	criteria := query.Criteria{
		Type:       models.TransactionType(params.Type),
		CategoryID: params.Category,
		Text:       params.Q,
		Window:     query.Window(params.Window),
	}

	if v := c.Query("date_from"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date_from format, use RFC3339 or YYYY-MM-DD")
		}
		criteria.DateFrom = t
	}
	if v := c.Query("date_to"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date_to format, use RFC3339 or YYYY-MM-DD")
		}
		criteria.DateTo = t
	}
	if v := c.Query("min_amount"); v != "" {
		amt, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid min_amount")
		}
		criteria.MinAmount = &amt
	}
	if v := c.Query("max_amount"); v != "" {
		amt, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return criteria, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid max_amount")
		}
		criteria.MaxAmount = &amt
	}
	return criteria, nil
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transaction, err := h.store.Get(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
// Absent fields are left unchanged.
type UpdateTransactionRequest struct {
	Type        *models.TransactionType `json:"type" binding:"omitempty,transaction_type"`
	Amount      *int64                  `json:"amount" binding:"omitempty,gt=0"`
	Category    *string                 `json:"category"`
	Description *string                 `json:"description" binding:"omitempty,max=500"`
	Date        *string                 `json:"date"`
}

// UpdateTransaction handles a partial-field merge into an existing transaction
// @Summary     Update transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                    true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := models.TransactionUpdate{
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseFlexibleTime(*req.Date)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
			return
		}
		update.Date = &parsed
	}

	transaction, err := h.store.Update(c.Param("id"), update)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
