package service

import (
	"github.com/alexanderramin/weeks/internal/app"
	"github.com/alexanderramin/weeks/internal/datemath"
)

// ResolveInput turns the raw dob parameter into the initial birth-date input.
// A valid parameter locks the input; an absent or invalid one is ignored and
// leaves the picker available.
func ResolveInput(param string) app.BirthDateInput {
	if param == "" {
		return app.BirthDateInput{Source: app.SourceNone}
	}
	birth, err := datemath.ParseDate(param)
	if err != nil {
		return app.BirthDateInput{Source: app.SourceNone}
	}
	return app.BirthDateInput{Birth: &birth, Source: app.SourceParam, Locked: true}
}
