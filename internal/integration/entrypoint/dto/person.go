package dto

import (
	"time"

	"github.com/household-expenses/backend/internal/application/usecase/person"
)

// PersonRequest represents the request body for creating or replacing a person.
type PersonRequest struct {
	Name string `json:"name" binding:"required,max=200"`
	Age  *int   `json:"age" binding:"required"`
}

// PersonResponse represents a person with its totals.
type PersonResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	IsMinor          bool      `json:"is_minor"`
	IsActive         bool      `json:"is_active"`
	TransactionCount int       `json:"transaction_count"`
	CreatedAt        time.Time `json:"created_at"`
	TotalsResponse
}

// PersonListResponse represents a list of people.
type PersonListResponse struct {
	People []PersonResponse `json:"people"`
}

// SummaryResponse holds per-person totals and the household totals.
type SummaryResponse struct {
	People []PersonResponse `json:"people"`
	Totals TotalsResponse   `json:"totals"`
}

// ToPersonResponse converts a person row to a response.
func ToPersonResponse(p person.PersonWithTotals) PersonResponse {
	return PersonResponse{
		ID:               p.Person.ID(),
		Name:             p.Person.Name().Value(),
		Age:              p.Person.Age().Value(),
		IsMinor:          p.Person.IsMinor(),
		IsActive:         p.Person.IsActive(),
		TransactionCount: p.Person.TransactionCount(),
		CreatedAt:        p.Person.CreatedAt(),
		TotalsResponse:   ToTotalsResponse(p.Totals),
	}
}

// ToPersonListResponse converts person rows to a list response.
func ToPersonListResponse(rows []person.PersonWithTotals) PersonListResponse {
	people := make([]PersonResponse, len(rows))
	for i, row := range rows {
		people[i] = ToPersonResponse(row)
	}
	return PersonListResponse{People: people}
}

// ToSummaryResponse converts the household summary to a response.
func ToSummaryResponse(output *person.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		People: ToPersonListResponse(output.People).People,
		Totals: ToTotalsResponse(output.Totals),
	}
}
