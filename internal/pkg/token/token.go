package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrWrongTokenType = errors.New("invalid token type")

type Claims struct {
	UserID    string `json:"user_id"`
	LoginType string `json:"login_type"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 tokens with a shared secret.
type Provider struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewProvider(secret string, accessTTL, refreshTTL time.Duration) *Provider {
	return &Provider{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func (p *Provider) RefreshTTL() time.Duration {
	return p.refreshTTL
}

func (p *Provider) GenerateAccessToken(userID, loginType string) (string, error) {
	return p.generate(userID, loginType, TypeAccess, p.accessTTL)
}

func (p *Provider) GenerateRefreshToken(userID, loginType string) (string, error) {
	return p.generate(userID, loginType, TypeRefresh, p.refreshTTL)
}

func (p *Provider) generate(userID, loginType, tokenType string, expire time.Duration) (string, error) {
	now := p.now()
	claims := Claims{
		UserID:    userID,
		LoginType: loginType,
		Type:      tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Parse verifies signature, expiry and that the token is of expectedType.
func (p *Provider) Parse(expectedType, tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Type != expectedType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}
