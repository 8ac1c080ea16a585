package binder

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joblyhq/jobly/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type params struct {
	Hello  string  `json:"hello" mod:"trim" validate:"max=9"`
	Equity *string `json:"equity" validate:"omitnil,equity"`
	Count  *int    `json:"count" validate:"omitnil,min=0"`
	Omit   string  `json:"-"`
}

type queryParams struct {
	Title     *string `query:"title"`
	MinSalary *int    `query:"minSalary" validate:"omitnil,min=0"`
	Limit     int     `query:"limit" default:"10"`
}

var (
	goodJSON             = `{"hello":" world "}`
	unknownFieldsErrJSON = `{"hello":"world","foo":"bar"}`
	typeErrJSON          = `{"hello":123}`
	validationErrJSON    = `{"hello":"0123456789"}`
	multiErrJSON         = `{"hello":"0123456789","equity":"1.5","count":-1}`
)

func TestNew(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)
	assert.NotNil(t, b)

	t.Run("only allows application/json and application/x-www-form-urlencoded", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationXML)
		p := params{}
		err := b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "Unsupported Media Type")
	})

	t.Run("disallows unknown fields", func(tt *testing.T) {
		c := newContext(unknownFieldsErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err := b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `Unknown Parameter "foo"`)
	})

	t.Run("returns a good message for type errors", func(tt *testing.T) {
		c := newContext(typeErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err := b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `"hello" should be of type string`)
	})

	t.Run("use mod tag to modify params", func(tt *testing.T) {
		c := newContext(goodJSON, echo.MIMEApplicationJSON)
		p := params{}
		err := b.Bind(&p, c)
		require.NoError(tt, err)
		assert.Equal(tt, "world", p.Hello)
	})

	t.Run("use validate tag to validate params", func(tt *testing.T) {
		c := newContext(validationErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err := b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "length must be less than or equal to 9 characters")
	})

	t.Run("reports every failing field", func(tt *testing.T) {
		c := newContext(multiErrJSON, echo.MIMEApplicationJSON)
		p := params{}
		err := b.Bind(&p, c)
		require.Error(tt, err)

		var e *errcodes.Error
		require.ErrorAs(tt, err, &e)
		assert.Equal(tt, http.StatusBadRequest, e.HTTPCode)
		assert.Len(tt, e.Messages, 3)
		assert.Contains(tt, e.Messages, `"equity" must be a decimal string between 0 and 1`)
		assert.Contains(tt, e.Messages, `"count" must be greater than or equal to 0`)
	})

	t.Run("rejects an empty body on writes", func(tt *testing.T) {
		c := newContext("", echo.MIMEApplicationJSON)
		p := params{}
		err := b.Bind(&p, c)
		assert.Contains(tt, err.Error(), "Request body can't be empty.")
	})

	t.Run("decodes query params on reads", func(tt *testing.T) {
		c := newQueryContext("/?title=eng&minSalary=5000")
		p := queryParams{}
		err := b.Bind(&p, c)
		require.NoError(tt, err)
		require.NotNil(tt, p.Title)
		assert.Equal(tt, "eng", *p.Title)
		require.NotNil(tt, p.MinSalary)
		assert.Equal(tt, 5000, *p.MinSalary)
		assert.Equal(tt, 10, p.Limit)
	})

	t.Run("rejects query params of the wrong type", func(tt *testing.T) {
		c := newQueryContext("/?minSalary=lots")
		p := queryParams{}
		err := b.Bind(&p, c)
		require.Error(tt, err)
		assert.Contains(tt, err.Error(), `"minSalary" should be of type int`)
	})

	t.Run("rejects unknown query params", func(tt *testing.T) {
		c := newQueryContext("/?nope=1")
		p := queryParams{}
		err := b.Bind(&p, c)
		assert.Contains(tt, err.Error(), `Unknown Parameter "nope"`)
	})
}

func TestValidators(t *testing.T) {
	t.Parallel()
	b, err := New()
	require.NoError(t, err)

	type payload struct {
		Equity string `json:"equity" validate:"equity"`
		Handle string `json:"handle" validate:"handle"`
		URL    string `json:"url" validate:"url"`
	}

	cases := []struct {
		p     payload
		valid bool
	}{
		{payload{"0", "acme", ""}, true},
		{payload{"0.05", "acme-corp", "https://acme.test/logo.png"}, true},
		{payload{"1.000", "a1", "http://x.io"}, true},
		{payload{"1.01", "acme", ""}, false},
		{payload{"-0.1", "acme", ""}, false},
		{payload{".5", "acme", ""}, false},
		{payload{"0.5", "Acme", ""}, false},
		{payload{"0.5", "acme--corp", ""}, false},
		{payload{"0.5", "acme", "ftp://acme.test"}, false},
		{payload{"0.5", "acme", "not a url"}, false},
	}

	for _, tc := range cases {
		err := b.Validate(&tc.p)
		if tc.valid {
			assert.NoError(t, err, "%+v", tc.p)
		} else {
			assert.Error(t, err, "%+v", tc.p)
		}
	}
}

func newContext(payload, mime string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(echo.POST, "/", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, mime)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr)
}

func newQueryContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(echo.GET, target, nil)
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr)
}
