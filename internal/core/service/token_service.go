package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gameronce/commerce-api/internal/core/domain"
	"github.com/gameronce/commerce-api/internal/core/ports"
)

// TokenConfig carries the signing material and lifetimes for both token kinds.
// Built once from the process configuration and injected; token code never
// reads the environment.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// accessClaims is the signed payload of an access token.
type accessClaims struct {
	ID    uint                 `json:"id"`
	Email string               `json:"email"`
	Type  domain.PrincipalType `json:"type"`
	Rol   domain.AdminRole     `json:"rol,omitempty"`
	jwt.RegisteredClaims
}

// refreshClaims carries identity only. No email, no role: a stolen refresh
// token cannot impersonate beyond the exchange itself.
type refreshClaims struct {
	ID   uint                 `json:"id"`
	Type domain.PrincipalType `json:"type"`
	jwt.RegisteredClaims
}

// TokenService implements ports.TokenIssuer with HS256-signed JWTs.
type TokenService struct {
	cfg TokenConfig
}

func NewTokenService(cfg TokenConfig) *TokenService {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{cfg: cfg}
}

// IssueAccess signs an access token carrying {id, email, type, rol}.
func (s *TokenService) IssueAccess(p domain.Principal) (string, error) {
	now := time.Now()
	claims := accessClaims{
		ID:    p.ID,
		Email: p.Email,
		Type:  p.Type,
		Rol:   p.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.AccessTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.AccessSecret))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return token, nil
}

// IssueRefresh signs a refresh token carrying {id, type} only, with its own
// secret and lifetime.
func (s *TokenService) IssueRefresh(p domain.Principal) (string, error) {
	now := time.Now()
	claims := refreshClaims{
		ID:   p.ID,
		Type: p.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.RefreshTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.RefreshSecret))
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return token, nil
}

// IssuePair mints both tokens for the principal.
func (s *TokenService) IssuePair(p domain.Principal) (*ports.TokenPair, error) {
	access, err := s.IssueAccess(p)
	if err != nil {
		return nil, err
	}
	refresh, err := s.IssueRefresh(p)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccess checks signature, expiry and issuer of an access token.
func (s *TokenService) VerifyAccess(token string) (*ports.AccessClaims, error) {
	var claims accessClaims
	if err := s.parse(token, &claims, s.cfg.AccessSecret); err != nil {
		return nil, err
	}
	return &ports.AccessClaims{ID: claims.ID, Email: claims.Email, Type: claims.Type, Rol: claims.Rol}, nil
}

// VerifyRefresh checks signature, expiry and issuer of a refresh token.
func (s *TokenService) VerifyRefresh(token string) (*ports.RefreshClaims, error) {
	var claims refreshClaims
	if err := s.parse(token, &claims, s.cfg.RefreshSecret); err != nil {
		return nil, err
	}
	return &ports.RefreshClaims{ID: claims.ID, Type: claims.Type}, nil
}

// parse validates a token and maps library failures onto the two domain
// errors callers must tell apart: expired vs anything else.
func (s *TokenService) parse(token string, claims jwt.Claims, secret string) error {
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(s.cfg.Issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ErrTokenExpired
		}
		return domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return domain.ErrTokenInvalid
	}
	return nil
}
