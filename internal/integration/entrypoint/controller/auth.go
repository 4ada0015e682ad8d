package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/household-expenses/backend/internal/application/usecase/auth"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	loginUseCase         *auth.LoginUserUseCase
	validateTokenUseCase *auth.ValidateTokenUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.LoginUserUseCase,
	validateTokenUseCase *auth.ValidateTokenUseCase,
) *AuthController {
	return &AuthController{
		loginUseCase:         loginUseCase,
		validateTokenUseCase: validateTokenUseCase,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingFields)) {
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     output.Token,
		Username:  output.Username,
		ExpiresAt: output.ExpiresAt,
	})
}

// Validate handles POST /auth/validate requests. The token is read from the
// body or, when absent, from the Authorization header.
func (c *AuthController) Validate(ctx *gin.Context) {
	var req dto.ValidateTokenRequest
	if ctx.Request.ContentLength > 0 {
		if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingToken)) {
			return
		}
	}
	if req.Token == "" {
		req.Token = strings.TrimSpace(strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer "))
	}

	output, err := c.validateTokenUseCase.Execute(ctx.Request.Context(), auth.ValidateTokenInput{Token: req.Token})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	response := dto.ValidateTokenResponse{Valid: output.Valid}
	if output.Valid {
		expiresAt := output.ExpiresAt
		response.Username = output.Username
		response.ExpiresAt = &expiresAt
	}
	ctx.JSON(http.StatusOK, response)
}

// handleAuthError handles authentication errors and returns appropriate HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	respondInternalError(ctx, err)
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
