package auth

import (
	"strings"

	"github.com/joblyhq/jobly/pkg/errcodes"
	"github.com/labstack/echo/v4"
)

const claimsKey = "auth_claims"

// Middleware provides authentication middleware.
type Middleware struct {
	authService *Service
}

// NewMiddleware creates a new auth middleware.
func NewMiddleware(authService *Service) *Middleware {
	return &Middleware{
		authService: authService,
	}
}

// Authenticate parses the bearer token if one is present and stores its
// claims on the context. It never rejects a request.
func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims := m.parseHeader(c); claims != nil {
			c.Set(claimsKey, claims)
		}
		return next(c)
	}
}

// RequireLogin rejects requests without a valid token.
func (m *Middleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.claims(c) == nil {
			return errcodes.Unauthorized("Authentication required")
		}
		return next(c)
	}
}

// RequireAdmin rejects requests without a valid token (401) and requests
// from users that aren't admins (403).
func (m *Middleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := m.claims(c)
		if claims == nil {
			return errcodes.Unauthorized("Authentication required")
		}
		if !claims.IsAdmin {
			return errcodes.Forbidden("Admin access required")
		}
		return next(c)
	}
}

// RequireAdminOrSelf rejects requests unless the caller is an admin or the
// user named by the given route parameter.
func (m *Middleware) RequireAdminOrSelf(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := m.claims(c)
			if claims == nil {
				return errcodes.Unauthorized("Authentication required")
			}
			if !claims.IsAdmin && !strings.EqualFold(claims.Username, c.Param(param)) {
				return errcodes.Forbidden("You can only access your own account")
			}
			return next(c)
		}
	}
}

// claims returns the claims stored by Authenticate, falling back to parsing
// the header for routes registered without it.
func (m *Middleware) claims(c echo.Context) *JWTClaims {
	if claims := ClaimsFromContext(c); claims != nil {
		return claims
	}
	claims := m.parseHeader(c)
	if claims != nil {
		c.Set(claimsKey, claims)
	}
	return claims
}

func (m *Middleware) parseHeader(c echo.Context) *JWTClaims {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return nil
	}

	claims, err := m.authService.ValidateToken(strings.TrimSpace(token))
	if err != nil {
		return nil
	}
	return claims
}

// ClaimsFromContext returns the authenticated user's claims, or nil.
func ClaimsFromContext(c echo.Context) *JWTClaims {
	claims, _ := c.Get(claimsKey).(*JWTClaims)
	return claims
}
