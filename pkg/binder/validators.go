package binder

import (
	"net/url"
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	equityTag = "equity"
	handleTag = "handle"
)

var (
	equityRE = regexp.MustCompile(`^(0(\.[0-9]+)?|1(\.0+)?)$`)
	handleRE = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// equityValidator ensures the value is a decimal string between 0 and 1
// inclusive, e.g. "0", "0.05" or "1.0". Equity is kept as a string so that
// the exact decimal the client sent is what gets stored.
func equityValidator(fl validator.FieldLevel) bool {
	return equityRE.MatchString(fl.Field().String())
}

// handleValidator ensures the value is a lowercase slug made of letters,
// digits and single dashes.
func handleValidator(fl validator.FieldLevel) bool {
	return handleRE.MatchString(fl.Field().String())
}

// urlValidator only accepts absolute http(s) URLs. The empty string is allowed
// so the value can be cleared.
func urlValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
