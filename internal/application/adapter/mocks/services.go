package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/household-expenses/backend/internal/application/adapter"
	"github.com/household-expenses/backend/internal/domain/event"
)

// TokenService is a mock of adapter.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) GenerateToken(ctx context.Context, username string) (*adapter.IssuedToken, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adapter.IssuedToken), args.Error(1)
}

func (m *TokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adapter.TokenClaims), args.Error(1)
}

// PasswordService is a mock of adapter.PasswordService.
type PasswordService struct {
	mock.Mock
}

func (m *PasswordService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordService) VerifyPassword(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

// CredentialStore is a mock of adapter.CredentialStore.
type CredentialStore struct {
	mock.Mock
}

func (m *CredentialStore) PasswordHash(username string) (string, bool) {
	args := m.Called(username)
	return args.String(0), args.Bool(1)
}

// EventPublisher is a mock of adapter.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, events ...event.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}
