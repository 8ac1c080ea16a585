package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/joblyhq/jobly/pkg/config"
	"github.com/joblyhq/jobly/pkg/database"
	"github.com/joblyhq/jobly/pkg/migrations"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.NewForTest()
	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	e, err := newEcho(cfg, db)
	require.NoError(t, err)
	return e
}

func serve(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createUser(t *testing.T, e *echo.Echo, username string, isAdmin bool) string {
	t.Helper()

	body := `{"username":"` + username + `","password":"password1","isAdmin":` + strconv.FormatBool(isAdmin) + `}`
	rec := serve(e, http.MethodPost, "/test/users", "", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Token
}

func TestEndToEnd(t *testing.T) {
	e := newTestEcho(t)
	admin := createUser(t, e, "admin", true)
	user := createUser(t, e, "user", false)

	rec := serve(e, http.MethodPost, "/companies", admin, `{"handle":"acme","name":"Acme","numEmployees":50}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(e, http.MethodPost, "/jobs", user,
		`{"title":"Engineer","salary":90000,"equity":"0.01","companyHandle":"acme"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(e, http.MethodPost, "/jobs", admin,
		`{"title":"Engineer","salary":90000,"equity":"0.01","companyHandle":"acme"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"job":{"id":1,"title":"Engineer","salary":90000,"equity":"0.01","companyHandle":"acme"}}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/jobs?hasEquity=true", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"jobs":[{"id":1,"title":"Engineer","salary":90000,"equity":"0.01","companyHandle":"acme"}]}`, rec.Body.String())

	rec = serve(e, http.MethodPost, "/auth/token", "", `{"username":"user","password":"password1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = serve(e, http.MethodPost, "/users/user/jobs/1", user, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Deleting the company takes its jobs with it.
	rec = serve(e, http.MethodDelete, "/companies/acme", admin, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = serve(e, http.MethodGet, "/jobs/1", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(e, http.MethodDelete, "/test/data", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"jobs":0,"companies":0,"users":2}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	e := newTestEcho(t)

	rec := serve(e, http.MethodGet, "/nope", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "Page not found.", body.Error.Message)
}

func TestNew(t *testing.T) {
	cfg := config.NewForTest()
	cfg.ServerPort = 4000
	db, err := database.New(cfg)
	require.NoError(t, err)
	defer db.Close()

	srv, err := New(cfg, db)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:4000", srv.Addr)
}
