package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Verification failures. Callers that gate requests collapse all of
// these into a single forbidden response.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)

// TokenManager issues and verifies signed, time-limited identity tokens.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

// NewTokenManager builds a new manager around the process-wide signing key.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// Claims describes the JWT payload. The email claim is the subject.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SubjectEmail returns the identity the token is bound to.
func (c *Claims) SubjectEmail() string {
	if c.Email != "" {
		return c.Email
	}
	return c.Subject
}

// Issue signs a token binding the subject to an absolute expiry of now+ttl.
// TTL is a parameter: different issuance contexts use different lifetimes.
func (tm *TokenManager) Issue(subject string, ttl time.Duration) (string, time.Time, error) {
	issuedAt := tm.now()
	expiresAt := issuedAt.Add(ttl)
	claims := &Claims{
		Email: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify validates the token and returns its claims. Failures map onto
// the Malformed/Signature/Expired taxonomy.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrTokenSignature
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
