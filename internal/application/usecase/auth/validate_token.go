package auth

import (
	"context"
	"time"

	"github.com/household-expenses/backend/internal/application/adapter"
)

// ValidateTokenInput represents the input for token validation.
type ValidateTokenInput struct {
	Token string
}

// ValidateTokenOutput reports whether the token is usable. An invalid token
// is a normal outcome, not an error.
type ValidateTokenOutput struct {
	Valid     bool
	Username  string
	ExpiresAt time.Time
}

// ValidateTokenUseCase checks a bearer token.
type ValidateTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewValidateTokenUseCase creates a new ValidateTokenUseCase instance.
func NewValidateTokenUseCase(tokenService adapter.TokenService) *ValidateTokenUseCase {
	return &ValidateTokenUseCase{
		tokenService: tokenService,
	}
}

// Execute validates the token.
func (uc *ValidateTokenUseCase) Execute(ctx context.Context, input ValidateTokenInput) (*ValidateTokenOutput, error) {
	if input.Token == "" {
		return &ValidateTokenOutput{Valid: false}, nil
	}

	claims, err := uc.tokenService.ValidateToken(ctx, input.Token)
	if err != nil {
		return &ValidateTokenOutput{Valid: false}, nil
	}

	return &ValidateTokenOutput{
		Valid:     true,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
