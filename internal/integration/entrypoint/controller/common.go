package controller

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/household-expenses/backend/internal/integration/entrypoint/dto"
	"github.com/household-expenses/backend/internal/integration/entrypoint/validation"
)

// parseID reads a positive integer path parameter. It writes a 400 response
// and returns false when the parameter is malformed.
func parseID(ctx *gin.Context, param, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(param), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + label + " ID format",
		})
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body and writes a 400 response with field
// details on failure.
func bindJSON(ctx *gin.Context, req any, code string) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    code,
			Details: validation.ToDetails(err),
		})
		return false
	}
	return true
}

// respondInternalError logs err and hides it from the client.
func respondInternalError(ctx *gin.Context, err error) {
	slog.Error("request failed",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
