package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "shopkart/internal/errors"
)

// TokenHeader is the request header private routes read the access token
// from. The original API used this custom header instead of the standard
// Authorization Bearer scheme; clients depend on it, keep it.
const TokenHeader = "x-auth-token"

const identityContextKey = "identity"

// Middleware returns the auth gate for private routes. It extracts the token
// from the x-auth-token header, verifies it and stores the embedded identity
// in the request context. Missing and invalid tokens both answer 401; which
// particular token fault occurred is never surfaced.
//
// The gate does no database lookup: the token's identity is trusted as-is,
// and handlers resolve the user themselves.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  identityContextKey,
		TokenLookup: "header:" + TokenHeader,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.Verify(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			msg := "Token is not valid"
			if errors.Is(err, echojwt.ErrJWTMissing) {
				msg = "No token, authorization denied"
			}
			return c.JSON(http.StatusUnauthorized, apperrors.NewErrorResponse(msg))
		},
	})
}

// IdentityFromContext returns the identity the gate attached to the request.
func IdentityFromContext(c echo.Context) (*Identity, bool) {
	identity, ok := c.Get(identityContextKey).(*Identity)
	return identity, ok
}
