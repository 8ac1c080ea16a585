package jobs

import (
	"context"

	"github.com/joblyhq/jobly/pkg/models"
	"github.com/labstack/echo/v4"
)

// Store is the persistence the job routes depend on. *Service implements it.
type Store interface {
	CreateJob(ctx context.Context, job *models.Job) error
	ListJobs(ctx context.Context, opts ListJobsOptions) ([]*models.Job, error)
	RetrieveJob(ctx context.Context, opts RetrieveJobOptions) (*models.Job, error)
	UpdateJob(ctx context.Context, job *models.Job, opts UpdateJobOptions) error
	DeleteJob(ctx context.Context, id int) error
}

// Gate guards the routes that modify jobs.
type Gate interface {
	RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc
}

// RegisterRoutes registers job routes on a pre-configured group. Reads are
// public and writes require an admin.
func RegisterRoutes(g *echo.Group, jobService Store, gate Gate) {
	h := &handler{
		jobService: jobService,
	}

	g.POST("", h.create, gate.RequireAdmin)
	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.PATCH("/:id", h.update, gate.RequireAdmin)
	g.DELETE("/:id", h.delete, gate.RequireAdmin)
}
