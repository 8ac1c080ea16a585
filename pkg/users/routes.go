package users

import (
	"github.com/joblyhq/jobly/pkg/auth"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers all user routes. Listing and creating
// users is admin-only; everything under /:username is open to that user too.
func RegisterRoutesWithGroup(g *echo.Group, userService *Service, authService *auth.Service, authMiddleware *auth.Middleware) {
	h := &handler{
		userService: userService,
		authService: authService,
	}

	self := authMiddleware.RequireAdminOrSelf("username")

	g.POST("", h.create, authMiddleware.RequireAdmin)
	g.GET("", h.list, authMiddleware.RequireAdmin)
	g.GET("/:username", h.retrieve, self)
	g.PATCH("/:username", h.update, self)
	g.DELETE("/:username", h.delete, self)
	g.POST("/:username/jobs/:id", h.apply, self)
}
