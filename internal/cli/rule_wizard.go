package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mkoschel/slotcal/internal/cli/formatter"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/mkoschel/slotcal/internal/recurrence"
	"github.com/spf13/cobra"
)

// slotcalHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func slotcalHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateTimeOfDay accepts a clock string like "9 AM" or "2:30 PM".
func validateTimeOfDay(s string) error {
	if s == "" {
		return fmt.Errorf("a start time is required")
	}
	if _, err := recurrence.ParseTimeOfDay(s); err != nil {
		return fmt.Errorf("use a time like \"9 AM\" or \"2:30 PM\"")
	}
	return nil
}

// validateOptionalTimeOfDay accepts empty or a clock string.
func validateOptionalTimeOfDay(s string) error {
	if s == "" {
		return nil
	}
	return validateTimeOfDay(s)
}

// validateDayOfMonth accepts empty or an integer in 1..31.
func validateDayOfMonth(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > 31 {
		return fmt.Errorf("enter a day between 1 and 31")
	}
	return nil
}

// wizardSelectCompany creates a huh form to select a company from the list.
func wizardSelectCompany(ctx context.Context, app *App, result *string) *huh.Form {
	companies, err := app.Companies.List(ctx)
	if err != nil || len(companies) == 0 {
		return nil
	}

	options := make([]huh.Option[string], 0, len(companies))
	for _, c := range companies {
		options = append(options, huh.NewOption(fmt.Sprintf("%s — %s", c.Code, c.Name), c.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which Company?").
				Options(options...).
				Value(result),
		),
	).WithTheme(slotcalHuhTheme()).WithShowHelp(false)
}

// ruleDraft collects wizard answers before they become a SlotRule.
type ruleDraft struct {
	kind       string
	weekday    string
	positions  []string
	dayOfMonth string
	months     []string
	start      string
	end        string
}

func weekdayOptions() []huh.Option[string] {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		options = append(options, huh.NewOption(n, n))
	}
	return options
}

func monthOptions() []huh.Option[string] {
	names := []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		options = append(options, huh.NewOption(n, n))
	}
	return options
}

// wizardRuleForm builds the multi-group form for a slot rule. Groups for
// fields a pattern kind does not use are hidden rather than omitted, so the
// form can be constructed once up front.
func wizardRuleForm(d *ruleDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Recurrence Pattern").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Monthly", "monthly"),
					huh.NewOption("Yearly", "yearly"),
					huh.NewOption("Seasonal", "seasonal"),
				).
				Value(&d.kind),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Weekday").
				Options(weekdayOptions()...).
				Value(&d.weekday),
		).WithHideFunc(func() bool {
			return d.kind != "weekly" && d.kind != "monthly" && d.kind != "seasonal"
		}),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Weeks of the Month").
				Description("Leave empty to use a day of the month instead").
				Options(
					huh.NewOption("First", "first"),
					huh.NewOption("Second", "second"),
					huh.NewOption("Third", "third"),
					huh.NewOption("Fourth", "fourth"),
					huh.NewOption("Last", "last"),
				).
				Value(&d.positions),
		).WithHideFunc(func() bool {
			return d.kind != "monthly"
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Day of Month").
				Placeholder("15").
				Validate(validateDayOfMonth).
				Value(&d.dayOfMonth),
		).WithHideFunc(func() bool {
			if d.kind == "yearly" {
				return false
			}
			return d.kind != "monthly" || len(d.positions) > 0
		}),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Months").
				Options(monthOptions()...).
				Value(&d.months),
		).WithHideFunc(func() bool {
			return d.kind != "yearly" && d.kind != "seasonal"
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Start Time").
				Placeholder("9 AM").
				Validate(validateTimeOfDay).
				Value(&d.start),
			huh.NewInput().
				Title("End Time").
				Placeholder("5 PM (optional)").
				Validate(validateOptionalTimeOfDay).
				Value(&d.end),
		),
	).WithTheme(slotcalHuhTheme()).WithShowHelp(false)
}

func newSlotsWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Add a slot rule interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("wizard requires an interactive terminal")
			}

			ctx := context.Background()

			var companyID string
			companyForm := wizardSelectCompany(ctx, app, &companyID)
			if companyForm == nil {
				return fmt.Errorf("no companies registered; run `slotcal company add` first")
			}
			if err := companyForm.Run(); err != nil {
				return err
			}

			var draft ruleDraft
			if err := wizardRuleForm(&draft).Run(); err != nil {
				return err
			}

			r := &domain.SlotRule{
				CompanyID: companyID,
				Kind:      draft.kind,
				Weekday:   draft.weekday,
				Positions: draft.positions,
				Months:    draft.months,
				StartTime: draft.start,
				EndTime:   draft.end,
			}
			if draft.dayOfMonth != "" {
				r.DayOfMonth, _ = strconv.Atoi(draft.dayOfMonth)
			}

			if err := app.Slots.AddRule(ctx, r); err != nil {
				return err
			}

			fmt.Printf("Added %s rule\n", r.Kind)
			return nil
		},
	}
}
