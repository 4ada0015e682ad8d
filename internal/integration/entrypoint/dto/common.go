// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/household-expenses/backend/internal/domain/aggregation"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// TotalsResponse is the JSON form of aggregation.Totals. Amounts use two decimals.
type TotalsResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}

// ToTotalsResponse converts totals to their JSON form.
func ToTotalsResponse(t aggregation.Totals) TotalsResponse {
	return TotalsResponse{
		TotalIncome:  t.TotalIncome.StringFixed(2),
		TotalExpense: t.TotalExpense.StringFixed(2),
		Balance:      t.Balance.StringFixed(2),
	}
}
