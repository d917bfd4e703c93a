package cli

import (
	"github.com/alexanderramin/weeks/internal/datemath"
	"github.com/alexanderramin/weeks/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value holding a validated YYYY-MM-DD date.
type dateValue struct {
	date domain.CalendarDate
	set  bool
}

var _ pflag.Value = (*dateValue)(nil)

func (v *dateValue) String() string {
	if !v.set {
		return ""
	}
	return v.date.String()
}

func (v *dateValue) Set(s string) error {
	d, err := datemath.ParseDate(s)
	if err != nil {
		return err
	}
	v.date = d
	v.set = true
	return nil
}

func (v *dateValue) Type() string { return "date" }
