package auth

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers the token and registration routes.
func RegisterRoutesWithGroup(g *echo.Group, authService *Service) {
	h := &handler{
		authService: authService,
	}

	g.POST("/token", h.token)
	g.POST("/register", h.register)
}
