package cli

import (
	"fmt"

	"github.com/mkoschel/slotcal/internal/recurrence"
	"github.com/spf13/pflag"
)

// timeValue is a pflag.Value for clock strings like "9 AM" or "2:30 PM".
// Validation happens at flag-parse time so a typo fails before any
// database work.
type timeValue string

var _ pflag.Value = (*timeValue)(nil)

func (v *timeValue) String() string { return string(*v) }

func (v *timeValue) Set(s string) error {
	if _, err := recurrence.ParseTimeOfDay(s); err != nil {
		return fmt.Errorf("invalid time %q: use a form like \"9 AM\" or \"2:30 PM\"", s)
	}
	*v = timeValue(s)
	return nil
}

func (v *timeValue) Type() string { return "time" }
