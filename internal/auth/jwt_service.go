package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrTokenExpired is returned when a token's expiry horizon has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenBadSignature is returned when a token was tampered with or
	// signed with a different secret.
	ErrTokenBadSignature = errors.New("token signature invalid")
	// ErrTokenMalformed is returned when a token cannot be decoded at all.
	ErrTokenMalformed = errors.New("token malformed")
)

// Identity is the minimal user identity embedded in an access token.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Claims mirrors the original token payload: the identity nested under a
// "user" key plus the registered time claims.
type Claims struct {
	User Identity `json:"user"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies stateless HS256 access tokens. Validity is
// purely signature plus expiry; nothing is stored server-side, so there is no
// revocation.
type JWTService struct {
	secret []byte
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
	}
}

// Issue signs an access token embedding the identity, valid for ttl from now.
func (s *JWTService) Issue(identity Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		User: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the token's signature and expiry and returns the embedded
// identity. Failures are reported as ErrTokenExpired, ErrTokenBadSignature or
// ErrTokenMalformed; the auth gate collapses all three to one generic 401.
func (s *JWTService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenBadSignature
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenBadSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenBadSignature
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	identity := claims.User
	return &identity, nil
}
