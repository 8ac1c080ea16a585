package companies

import (
	"net/http"

	"github.com/joblyhq/jobly/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	companyService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateCompanyPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	company := &models.Company{
		Handle:       params.Handle,
		Name:         params.Name,
		Description:  params.Description,
		NumEmployees: params.NumEmployees,
		LogoURL:      params.LogoURL,
	}
	if err := h.companyService.CreateCompany(ctx, company); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{"company": company}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListCompaniesQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	companies, err := h.companyService.ListCompanies(ctx, ListCompaniesOptions{
		Name:         params.Name,
		MinEmployees: params.MinEmployees,
		MaxEmployees: params.MaxEmployees,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"companies": companies}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	company, err := h.companyService.RetrieveCompany(ctx, RetrieveCompanyOptions{
		Handle:      c.Param("handle"),
		IncludeJobs: true,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"company": company}))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	params := UpdateCompanyPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	company, err := h.companyService.RetrieveCompany(ctx, RetrieveCompanyOptions{
		Handle: c.Param("handle"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	opts := UpdateCompanyOptions{Columns: []string{}}
	if params.Name != nil && *params.Name != company.Name {
		company.Name = *params.Name
		opts.Columns = append(opts.Columns, "name")
	}
	if params.Description != nil && *params.Description != company.Description {
		company.Description = *params.Description
		opts.Columns = append(opts.Columns, "description")
	}
	if params.NumEmployees != nil {
		company.NumEmployees = params.NumEmployees
		opts.Columns = append(opts.Columns, "num_employees")
	}
	if params.LogoURL != nil {
		company.LogoURL = params.LogoURL
		opts.Columns = append(opts.Columns, "logo_url")
	}

	if err := h.companyService.UpdateCompany(ctx, company, opts); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"company": company}))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	handle := c.Param("handle")

	if err := h.companyService.DeleteCompany(ctx, handle); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"deleted": handle}))
}
