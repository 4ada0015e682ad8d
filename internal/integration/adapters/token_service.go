// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/household-expenses/backend/internal/application/adapter"
	domainerror "github.com/household-expenses/backend/internal/domain/error"
)

const defaultTokenExpiry = 60 * time.Minute

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenConfig holds the signing parameters of issued tokens.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
	now      func() time.Time
}

// NewTokenService creates a new token service instance.
func NewTokenService(cfg TokenConfig) adapter.TokenService {
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = defaultTokenExpiry
	}
	return &tokenService{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		expiry:   expiry,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// GenerateToken issues a signed HS256 access token for the username.
func (s *tokenService) GenerateToken(ctx context.Context, username string) (*adapter.IssuedToken, error) {
	now := s.now()
	expiresAt := now.Add(s.expiry)

	claims := CustomClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   username,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &adapter.IssuedToken{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateToken validates an access token and returns its claims.
func (s *tokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	return &adapter.TokenClaims{
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err),
		)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid || claims.Username == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}

	return claims, nil
}
