package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"trustlink/pkg/domain"
	derrors "trustlink/pkg/domain-errors"
)

// Claims carried by registry access tokens. The caller's principal address
// travels in a dedicated claim so the subject stays free for federation.
type Claims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// TokenService issues and validates the HS256 bearer tokens that prove a
// caller controls a principal address.
type TokenService struct {
	signingKey []byte
	issuer     string
}

func NewTokenService(signingKey, issuer string) *TokenService {
	return &TokenService{signingKey: []byte(signingKey), issuer: issuer}
}

// GenerateToken mints a token for the given principal.
func (s *TokenService) GenerateToken(address domain.Address, expiresIn time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Address: address.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(s.signingKey)
}

// ValidateToken parses a bearer token and returns the principal it
// authenticates.
func (s *TokenService) ValidateToken(tokenString string) (domain.Address, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", derrors.New(derrors.CodeUnauthorized, "token has expired")
		}
		return "", derrors.New(derrors.CodeUnauthorized, "invalid token")
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return "", derrors.New(derrors.CodeUnauthorized, "invalid token claims")
	}
	address, err := domain.ParseAddress(claims.Address)
	if err != nil {
		return "", derrors.New(derrors.CodeUnauthorized, "token carries no principal address")
	}
	return address, nil
}
