package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	domainerror "github.com/household-expenses/backend/internal/domain/error"
	"github.com/household-expenses/backend/internal/domain/event"
	"github.com/household-expenses/backend/internal/domain/valueobject"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Secret:   "test-secret",
		Issuer:   "HouseholdExpensesAPI",
		Audience: "HouseholdExpensesAPI",
		Expiry:   time.Hour,
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService(testTokenConfig())

	issued, err := svc.GenerateToken(ctx, "usuario1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), issued.ExpiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(ctx, issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "usuario1", claims.Username)
}

func TestTokenService_Rejections(t *testing.T) {
	ctx := context.Background()
	cfg := testTokenConfig()

	t.Run("expired", func(t *testing.T) {
		svc := NewTokenService(cfg).(*tokenService)
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		issued, err := svc.GenerateToken(ctx, "admin")
		require.NoError(t, err)

		_, err = NewTokenService(cfg).ValidateToken(ctx, issued.Token)
		assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := cfg
		other.Audience = "SomeoneElse"
		issued, err := NewTokenService(other).GenerateToken(ctx, "admin")
		require.NoError(t, err)

		_, err = NewTokenService(cfg).ValidateToken(ctx, issued.Token)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := cfg
		other.Secret = "another-secret"
		issued, err := NewTokenService(other).GenerateToken(ctx, "admin")
		require.NoError(t, err)

		_, err = NewTokenService(cfg).ValidateToken(ctx, issued.Token)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"username": "admin",
			"iss":      cfg.Issuer,
			"aud":      cfg.Audience,
			"exp":      time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = NewTokenService(cfg).ValidateToken(ctx, signed)
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewTokenService(cfg).ValidateToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
	})
}

func TestCredentialDirectory(t *testing.T) {
	passwords := NewPasswordServiceWithCost(bcrypt.MinCost)

	dir, err := NewCredentialDirectory([]string{"usuario1:senha123", " admin:admin123 "}, passwords)
	require.NoError(t, err)

	hash, ok := dir.PasswordHash("admin")
	require.True(t, ok)
	assert.NoError(t, passwords.VerifyPassword(hash, "admin123"))
	assert.Error(t, passwords.VerifyPassword(hash, "wrong"))

	_, ok = dir.PasswordHash("ghost")
	assert.False(t, ok)

	_, err = NewCredentialDirectory([]string{"broken"}, passwords)
	assert.Error(t, err)
	_, err = NewCredentialDirectory([]string{"a:1", "a:2"}, passwords)
	assert.Error(t, err)
}

func TestLogEventPublisher(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	publisher := NewLogEventPublisher(logger)

	err := publisher.Publish(context.Background(),
		event.NewCategoryCreated(3, "Salary", valueobject.CategoryPurposeIncome),
		event.NewTransactionCreated(9, 1, 2, decimal.RequireFromString("10.5"), valueobject.TransactionTypeExpense, "Bus"),
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, event.CategoryCreatedName, first["event_name"])
	assert.Equal(t, event.TransactionCreatedName, second["event_name"])
	assert.Equal(t, "10.50", second["amount"])
	assert.Equal(t, float64(3), first["category_id"])
	assert.Equal(t, float64(9), second["transaction_id"])
}
