package testutils

import (
	"net/http"

	"github.com/joblyhq/jobly/pkg/auth"
	"github.com/joblyhq/jobly/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type handler struct {
	db          *bun.DB
	authService *auth.Service
}

// createUserRequest is the request body for creating a test user.
type createUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

// createUserResponse is the response body for creating a test user.
type createUserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// createUser creates a test user and returns a token for it.
// POST /test/users.
func (h *handler) createUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.authService.Register(ctx, auth.RegisterOptions{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: "Test",
		LastName:  "User",
		Email:     req.Username + "@example.com",
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create user")
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return errors.Wrap(err, "failed to generate token")
	}

	return c.JSON(http.StatusCreated, createUserResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}

// deleteAllDataResponse is the response body for deleting all data.
type deleteAllDataResponse struct {
	Jobs      int `json:"jobs"`
	Companies int `json:"companies"`
	Users     int `json:"users"`
}

// deleteAllData deletes every job, company and user.
// DELETE /test/data.
func (h *handler) deleteAllData(c echo.Context) error {
	ctx := c.Request().Context()
	resp := deleteAllDataResponse{}

	for _, target := range []struct {
		model interface{}
		count *int
	}{
		{(*models.Job)(nil), &resp.Jobs},
		{(*models.Company)(nil), &resp.Companies},
		{(*models.User)(nil), &resp.Users},
	} {
		result, err := h.db.NewDelete().
			Model(target.model).
			Where("1=1").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete test data")
		}
		deleted, _ := result.RowsAffected()
		*target.count = int(deleted)
	}

	return c.JSON(http.StatusOK, resp)
}
