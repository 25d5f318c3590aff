package cli

import (
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value holding a YYYY-MM-DD date. The empty string
// means today and is left for the service to resolve.
type dateValue string

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string { return string(*d) }

func (d *dateValue) Set(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return err
	}
	*d = dateValue(s)
	return nil
}

func (d *dateValue) Type() string { return "date" }

// dateFlag registers a --date flag on fs and returns its value.
func dateFlag(fs *pflag.FlagSet, usage string) *dateValue {
	d := new(dateValue)
	fs.Var(d, "date", usage)
	return d
}
