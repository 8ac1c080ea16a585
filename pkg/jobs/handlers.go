package jobs

import (
	"net/http"
	"strconv"

	"github.com/joblyhq/jobly/pkg/errcodes"
	"github.com/joblyhq/jobly/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	jobService Store
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := CreateJobPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	job := &models.Job{
		Title:         params.Title,
		Salary:        params.Salary,
		Equity:        params.Equity,
		CompanyHandle: params.CompanyHandle,
	}

	err := h.jobService.CreateJob(ctx, job)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{"job": job}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	// Bind params.
	params := ListJobsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	jobs, err := h.jobService.ListJobs(ctx, ListJobsOptions{
		Title:     params.Title,
		MinSalary: params.MinSalary,
		HasEquity: params.HasEquity == "true",
	})
	if err != nil {
		return errors.WithStack(err)
	}

	resp := struct {
		Jobs []*models.Job `json:"jobs"`
	}{jobs}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Job")
	}

	job, err := h.jobService.RetrieveJob(ctx, RetrieveJobOptions{
		ID:             &id,
		IncludeCompany: true,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"job": job}))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Job")
	}

	// Bind params.
	params := UpdateJobPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	job, err := h.jobService.RetrieveJob(ctx, RetrieveJobOptions{
		ID: &id,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	opts := UpdateJobOptions{Columns: []string{}}
	if params.Title != nil && *params.Title != job.Title {
		job.Title = *params.Title
		opts.Columns = append(opts.Columns, "title")
	}
	if params.Salary != nil {
		job.Salary = params.Salary
		opts.Columns = append(opts.Columns, "salary")
	}
	if params.Equity != nil {
		job.Equity = params.Equity
		opts.Columns = append(opts.Columns, "equity")
	}

	err = h.jobService.UpdateJob(ctx, job, opts)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"job": job}))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Job")
	}

	err = h.jobService.DeleteJob(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"deleted": id}))
}
