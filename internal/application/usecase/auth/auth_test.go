package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/application/adapter/mocks"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()
	expiresAt := time.Now().Add(time.Hour)

	tests := []struct {
		name         string
		input        LoginUserInput
		setup        func(store *mocks.CredentialStore, passwords *mocks.PasswordService, tokens *mocks.TokenService)
		expectedCode domainerror.AuthErrorCode
	}{
		{
			name:  "valid credentials",
			input: LoginUserInput{Username: "admin", Password: "admin123"},
			setup: func(store *mocks.CredentialStore, passwords *mocks.PasswordService, tokens *mocks.TokenService) {
				store.On("PasswordHash", "admin").Return("hash", true)
				passwords.On("VerifyPassword", "hash", "admin123").Return(nil)
				tokens.On("GenerateToken", ctx, "admin").Return(&adapter.IssuedToken{Token: "jwt", ExpiresAt: expiresAt}, nil)
			},
		},
		{
			name:         "missing fields",
			input:        LoginUserInput{Username: " ", Password: ""},
			setup:        func(*mocks.CredentialStore, *mocks.PasswordService, *mocks.TokenService) {},
			expectedCode: domainerror.ErrCodeMissingFields,
		},
		{
			name:  "unknown user",
			input: LoginUserInput{Username: "ghost", Password: "x"},
			setup: func(store *mocks.CredentialStore, _ *mocks.PasswordService, _ *mocks.TokenService) {
				store.On("PasswordHash", "ghost").Return("", false)
			},
			expectedCode: domainerror.ErrCodeInvalidCredentials,
		},
		{
			name:  "wrong password",
			input: LoginUserInput{Username: "admin", Password: "nope"},
			setup: func(store *mocks.CredentialStore, passwords *mocks.PasswordService, _ *mocks.TokenService) {
				store.On("PasswordHash", "admin").Return("hash", true)
				passwords.On("VerifyPassword", "hash", "nope").Return(errors.New("mismatch"))
			},
			expectedCode: domainerror.ErrCodeInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.CredentialStore)
			passwords := new(mocks.PasswordService)
			tokens := new(mocks.TokenService)
			tt.setup(store, passwords, tokens)

			out, err := NewLoginUserUseCase(store, passwords, tokens).Execute(ctx, tt.input)

			if tt.expectedCode != "" {
				var authErr *domainerror.AuthError
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.expectedCode, authErr.Code)
				tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt", out.Token)
			assert.Equal(t, "admin", out.Username)
			assert.Equal(t, expiresAt, out.ExpiresAt)
		})
	}
}

func TestValidateTokenUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		tokens := new(mocks.TokenService)
		tokens.On("ValidateToken", ctx, "good").Return(&adapter.TokenClaims{Username: "usuario1"}, nil)

		out, err := NewValidateTokenUseCase(tokens).Execute(ctx, ValidateTokenInput{Token: "good"})

		require.NoError(t, err)
		assert.True(t, out.Valid)
		assert.Equal(t, "usuario1", out.Username)
	})

	t.Run("invalid", func(t *testing.T) {
		tokens := new(mocks.TokenService)
		tokens.On("ValidateToken", ctx, "bad").Return(nil, domainerror.ErrInvalidToken)

		out, err := NewValidateTokenUseCase(tokens).Execute(ctx, ValidateTokenInput{Token: "bad"})

		require.NoError(t, err)
		assert.False(t, out.Valid)
	})
}
