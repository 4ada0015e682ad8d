// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/household-expenses/backend/internal/application/adapter"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of user login.
type LoginUserOutput struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// LoginUserUseCase handles user login logic.
type LoginUserUseCase struct {
	credentials     adapter.CredentialStore
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	credentials adapter.CredentialStore,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		credentials:     credentials,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"username and password are required",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Same error for unknown user and wrong password
	hash, ok := uc.credentials.PasswordHash(username)
	if !ok {
		return nil, invalidCredentials()
	}
	if err := uc.passwordService.VerifyPassword(hash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	token, err := uc.tokenService.GenerateToken(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	slog.Info("user logged in", "username", username)

	return &LoginUserOutput{
		Token:     token.Token,
		Username:  username,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid username or password",
		domainerror.ErrInvalidCredentials,
	)
}
