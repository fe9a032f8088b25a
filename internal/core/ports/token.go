package ports

import "github.com/gameronce/commerce-api/internal/core/domain"

// TokenPair bundles a freshly issued access/refresh token couple.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AccessClaims is the decoded payload of an access token.
type AccessClaims struct {
	ID    uint
	Email string
	Type  domain.PrincipalType
	Rol   domain.AdminRole
}

// RefreshClaims is the decoded payload of a refresh token. Deliberately
// narrower than AccessClaims: a stolen refresh token leaks neither email nor
// role until it is exchanged.
type RefreshClaims struct {
	ID   uint
	Type domain.PrincipalType
}

// TokenIssuer mints and validates the two token kinds. Access and refresh
// tokens are signed with distinct secrets so a single leaked secret does not
// compromise both. Verification failures distinguish expiry from any other
// defect via domain.ErrTokenExpired / domain.ErrTokenInvalid.
type TokenIssuer interface {
	IssueAccess(p domain.Principal) (string, error)
	IssueRefresh(p domain.Principal) (string, error)
	IssuePair(p domain.Principal) (*TokenPair, error)
	VerifyAccess(token string) (*AccessClaims, error)
	VerifyRefresh(token string) (*RefreshClaims, error)
}
