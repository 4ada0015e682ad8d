package dto

import (
	"time"

	"github.com/household-expenses/backend/internal/application/usecase/category"
	"github.com/household-expenses/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for creating a category.
type CreateCategoryRequest struct {
	Description string `json:"description" binding:"required,max=400"`
	Purpose     string `json:"purpose" binding:"required,oneof=expense income both"`
}

// UpdateCategoryRequest represents the request body for updating a category.
type UpdateCategoryRequest struct {
	Description string `json:"description" binding:"required,max=400"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Purpose     string    `json:"purpose"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryListResponse represents a list of categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryWithTotalsResponse represents a category with its totals.
type CategoryWithTotalsResponse struct {
	CategoryResponse
	TotalsResponse
}

// CategoryTotalsListResponse represents per-category totals and their grand total.
type CategoryTotalsListResponse struct {
	Categories []CategoryWithTotalsResponse `json:"categories"`
	Totals     TotalsResponse               `json:"totals"`
}

// ToCategoryResponse converts a category to a response.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID(),
		Description: c.Description().Value(),
		Purpose:     FormatCategoryPurpose(c.Purpose()),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

// ToCategoryListResponse converts categories to a list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{Categories: out}
}

// ToCategoryTotalsListResponse converts per-category totals to a response.
func ToCategoryTotalsListResponse(output *category.ListCategoriesWithTotalsOutput) CategoryTotalsListResponse {
	rows := make([]CategoryWithTotalsResponse, len(output.Categories))
	for i, row := range output.Categories {
		rows[i] = CategoryWithTotalsResponse{
			CategoryResponse: ToCategoryResponse(row.Category),
			TotalsResponse:   ToTotalsResponse(row.Totals),
		}
	}
	return CategoryTotalsListResponse{
		Categories: rows,
		Totals:     ToTotalsResponse(output.Totals),
	}
}
