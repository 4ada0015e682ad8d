package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-expenses/backend/internal/application/usecase/transaction"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase *transaction.CreateTransactionUseCase
	listUseCase   *transaction.ListTransactionsUseCase
	cancelUseCase *transaction.CancelTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	cancelUseCase *transaction.CancelTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		cancelUseCase: cancelUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	// Parse request body
	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingTransactionFields)) {
		return
	}

	// Build input
	input := transaction.CreateTransactionInput{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Description: req.Description,
		Type:        dto.ParseTransactionType(req.Type),
		CategoryID:  req.CategoryID,
		PersonID:    req.PersonID,
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionDetailResponse(output.Transaction))
}

// Cancel handles POST /transactions/:id/cancel requests.
func (c *TransactionController) Cancel(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "transaction")
	if !ok {
		return
	}

	output, err := c.cancelUseCase.Execute(ctx.Request.Context(), transaction.CancelTransactionInput{ID: id})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeTxnPersonNotFound,
		domainerror.ErrCodeTxnCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInactivePerson,
		domainerror.ErrCodeInactiveCategory,
		domainerror.ErrCodeTransactionAlreadyCancelled:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeAmountPrecision,
		domainerror.ErrCodeInvalidDescription,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeMinorIncome,
		domainerror.ErrCodeCategoryTypeIncompatible,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
