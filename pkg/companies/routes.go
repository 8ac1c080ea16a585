package companies

import (
	"github.com/joblyhq/jobly/pkg/auth"
	"github.com/labstack/echo/v4"
)

// RegisterRoutesWithGroup registers company routes on a pre-configured group.
// Reads are public and writes require an admin.
func RegisterRoutesWithGroup(g *echo.Group, companyService *Service, authMiddleware *auth.Middleware) {
	h := &handler{
		companyService: companyService,
	}

	g.POST("", h.create, authMiddleware.RequireAdmin)
	g.GET("", h.list)
	g.GET("/:handle", h.retrieve)
	g.PATCH("/:handle", h.update, authMiddleware.RequireAdmin)
	g.DELETE("/:handle", h.delete, authMiddleware.RequireAdmin)
}
