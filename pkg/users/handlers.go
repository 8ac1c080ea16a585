package users

import (
	"net/http"
	"strconv"

	"github.com/joblyhq/jobly/pkg/auth"
	"github.com/joblyhq/jobly/pkg/errcodes"
	"github.com/joblyhq/jobly/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	userService *Service
	authService *auth.Service
}

type userWithJobs struct {
	*models.User
	Jobs []int `json:"jobs"`
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateUserPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authService.Register(ctx, auth.RegisterOptions(params))
	if err != nil {
		return err
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{"user": user, "token": token}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	resp := struct {
		Users []*models.User `json:"users"`
	}{users}

	return errors.WithStack(c.JSON(http.StatusOK, resp))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.userService.Retrieve(ctx, c.Param("username"))
	if err != nil {
		return err
	}

	jobIDs, err := h.userService.AppliedJobIDs(ctx, user.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"user": userWithJobs{user, jobIDs}}))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	params := UpdateUserPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.userService.Retrieve(ctx, c.Param("username"))
	if err != nil {
		return err
	}

	opts := UpdateOptions{Columns: []string{}}

	if params.FirstName != nil && *params.FirstName != user.FirstName {
		user.FirstName = *params.FirstName
		opts.Columns = append(opts.Columns, "first_name")
	}
	if params.LastName != nil && *params.LastName != user.LastName {
		user.LastName = *params.LastName
		opts.Columns = append(opts.Columns, "last_name")
	}
	if params.Email != nil && *params.Email != user.Email {
		user.Email = *params.Email
		opts.Columns = append(opts.Columns, "email")
	}
	if params.Password != nil {
		hash, err := auth.HashPassword(*params.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
		opts.Columns = append(opts.Columns, "password_hash")
	}

	err = h.userService.Update(ctx, user, opts)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"user": user}))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	username := c.Param("username")

	err := h.userService.Delete(ctx, username)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"deleted": username}))
}

func (h *handler) apply(c echo.Context) error {
	ctx := c.Request().Context()

	jobID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errcodes.NotFound("Job")
	}

	user, err := h.userService.Retrieve(ctx, c.Param("username"))
	if err != nil {
		return err
	}

	err = h.userService.Apply(ctx, user.ID, jobID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{"applied": jobID}))
}
