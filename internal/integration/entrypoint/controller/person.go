package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-expenses/backend/internal/application/usecase/person"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/integration/entrypoint/dto"
)

// PersonController handles person endpoints.
type PersonController struct {
	createUseCase  *person.CreatePersonUseCase
	getUseCase     *person.GetPersonUseCase
	listUseCase    *person.ListPeopleUseCase
	updateUseCase  *person.UpdatePersonUseCase
	deleteUseCase  *person.DeletePersonUseCase
	summaryUseCase *person.GetSummaryUseCase
}

// NewPersonController creates a new person controller instance.
func NewPersonController(
	createUseCase *person.CreatePersonUseCase,
	getUseCase *person.GetPersonUseCase,
	listUseCase *person.ListPeopleUseCase,
	updateUseCase *person.UpdatePersonUseCase,
	deleteUseCase *person.DeletePersonUseCase,
	summaryUseCase *person.GetSummaryUseCase,
) *PersonController {
	return &PersonController{
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// List handles GET /people requests.
func (c *PersonController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonListResponse(output.People))
}

// Get handles GET /people/:id requests.
func (c *PersonController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "person")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), person.GetPersonInput{ID: id})
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonResponse(output.Person))
}

// Create handles POST /people requests.
func (c *PersonController) Create(ctx *gin.Context) {
	var req dto.PersonRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPersonData)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), person.CreatePersonInput{
		Name: req.Name,
		Age:  *req.Age,
	})
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPersonResponse(output.Person))
}

// Update handles PUT /people/:id requests.
func (c *PersonController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "person")
	if !ok {
		return
	}

	var req dto.PersonRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingPersonData)) {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), person.UpdatePersonInput{
		ID:   id,
		Name: req.Name,
		Age:  *req.Age,
	})
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPersonResponse(output.Person))
}

// Delete handles DELETE /people/:id requests.
func (c *PersonController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "person")
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), person.DeletePersonInput{ID: id}); err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /people/summary/totals requests.
func (c *PersonController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handlePersonError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// handlePersonError handles person errors and returns appropriate HTTP responses.
func (c *PersonController) handlePersonError(ctx *gin.Context, err error) {
	var personErr *domainerror.PersonError
	if errors.As(err, &personErr) {
		ctx.JSON(c.getStatusCodeForPersonError(personErr.Code), dto.ErrorResponse{
			Error: personErr.Message,
			Code:  string(personErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForPersonError maps person error codes to HTTP status codes.
func (c *PersonController) getStatusCodeForPersonError(code domainerror.PersonErrorCode) int {
	switch code {
	case domainerror.ErrCodePersonNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePersonNameExists:
		return http.StatusConflict
	case domainerror.ErrCodePersonInactive,
		domainerror.ErrCodePersonAlreadyInactive:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeInvalidPersonName,
		domainerror.ErrCodeInvalidPersonAge,
		domainerror.ErrCodeMissingPersonData:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
