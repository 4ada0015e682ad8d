// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-expenses/backend/internal/application/usecase/category"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase           *category.ListCategoriesUseCase
	listWithTotalsUseCase *category.ListCategoriesWithTotalsUseCase
	createUseCase         *category.CreateCategoryUseCase
	updateUseCase         *category.UpdateCategoryUseCase
	deactivateUseCase     *category.DeactivateCategoryUseCase
	deleteUseCase         *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	listWithTotalsUseCase *category.ListCategoriesWithTotalsUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deactivateUseCase *category.DeactivateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:           listUseCase,
		listWithTotalsUseCase: listWithTotalsUseCase,
		createUseCase:         createUseCase,
		updateUseCase:         updateUseCase,
		deactivateUseCase:     deactivateUseCase,
		deleteUseCase:         deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// ListWithTotals handles GET /categories/with-totals requests.
func (c *CategoryController) ListWithTotals(ctx *gin.Context) {
	output, err := c.listWithTotalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTotalsListResponse(output))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	// Parse request body
	var req dto.CreateCategoryRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingCategoryFields)) {
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		Description: req.Description,
		Purpose:     dto.ParseCategoryPurpose(req.Purpose),
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	// Parse category ID from URL
	id, ok := parseID(ctx, "id", "category")
	if !ok {
		return
	}

	// Parse request body
	var req dto.UpdateCategoryRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingCategoryFields)) {
		return
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		ID:          id,
		Description: req.Description,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Deactivate handles POST /categories/:id/deactivate requests.
func (c *CategoryController) Deactivate(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "category")
	if !ok {
		return
	}

	output, err := c.deactivateUseCase.Execute(ctx.Request.Context(), category.DeactivateCategoryInput{ID: id})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "category")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{ID: id}); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(c.getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryDescriptionExists,
		domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryInactive,
		domainerror.ErrCodeCategoryAlreadyInactive:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidCategoryDescription,
		domainerror.ErrCodeInvalidCategoryPurpose,
		domainerror.ErrCodeMissingCategoryFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
