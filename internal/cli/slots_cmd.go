package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/mkoschel/slotcal/internal/cli/formatter"
	"github.com/mkoschel/slotcal/internal/contract"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/spf13/cobra"
)

func newSlotsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Manage interview slots",
	}

	cmd.AddCommand(
		newSlotsListCmd(app),
		newSlotsAddRuleCmd(app),
		newSlotsAddCmd(app),
		newSlotsRulesCmd(app),
		newSlotsClearCmd(app),
		newSlotsWizardCmd(app),
		newSlotsBrowseCmd(app),
	)

	return cmd
}

func newSlotsListCmd(app *App) *cobra.Command {
	var perRule int
	var from string

	cmd := &cobra.Command{
		Use:   "list CODE",
		Short: "List upcoming interview slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewUpcomingSlotsRequest(args[0])
			if perRule > 0 {
				req.PerRule = perRule
			}
			if from != "" {
				ref, err := time.Parse("2006-01-02", from)
				if err != nil {
					return fmt.Errorf("invalid --from date %q: %w", from, err)
				}
				req.Now = &ref
			}

			resp, err := app.Slots.Upcoming(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatSlotList(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&perRule, "per-rule", 0, "Occurrences to expand per rule (default 3)")
	cmd.Flags().StringVar(&from, "from", "", "Reference date (YYYY-MM-DD, default today)")

	return cmd
}

func newSlotsAddRuleCmd(app *App) *cobra.Command {
	var kind, weekday string
	var start, end timeValue
	var positions, months []string
	var dayOfMonth int
	var validFrom, validUntil string

	cmd := &cobra.Command{
		Use:   "add-rule CODE",
		Short: "Add a recurring slot rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}

			r := &domain.SlotRule{
				CompanyID:  c.ID,
				Kind:       kind,
				Weekday:    weekday,
				Positions:  positions,
				DayOfMonth: dayOfMonth,
				Months:     months,
				StartTime:  string(start),
				EndTime:    string(end),
			}
			if validFrom != "" {
				t, err := time.Parse("2006-01-02", validFrom)
				if err != nil {
					return fmt.Errorf("invalid --valid-from date %q: %w", validFrom, err)
				}
				r.ValidFrom = &t
			}
			if validUntil != "" {
				t, err := time.Parse("2006-01-02", validUntil)
				if err != nil {
					return fmt.Errorf("invalid --valid-until date %q: %w", validUntil, err)
				}
				r.ValidUntil = &t
			}

			if err := app.Slots.AddRule(ctx, r); err != nil {
				return err
			}

			fmt.Printf("Added %s rule for %s\n", r.Kind, c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Pattern kind (daily|weekly|monthly|yearly|seasonal)")
	cmd.Flags().StringVar(&weekday, "weekday", "", "Weekday name (e.g. Monday)")
	cmd.Flags().StringArrayVar(&positions, "position", nil, "Week position for monthly rules (first|second|third|fourth|last, repeatable)")
	cmd.Flags().IntVar(&dayOfMonth, "day", 0, "Day of month (monthly/yearly rules)")
	cmd.Flags().StringArrayVar(&months, "month", nil, "Month name (yearly/seasonal rules, repeatable)")
	cmd.Flags().Var(&start, "start", "Start time (e.g. \"9 AM\" or \"2:30 PM\")")
	cmd.Flags().Var(&end, "end", "End time for a range slot")
	cmd.Flags().StringVar(&validFrom, "valid-from", "", "First date the rule applies (YYYY-MM-DD)")
	cmd.Flags().StringVar(&validUntil, "valid-until", "", "Last date the rule applies (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newSlotsAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add CODE TEXT",
		Short: "Add an ad-hoc slot string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Slots.AddAdhoc(ctx, c.ID, args[1]); err != nil {
				return err
			}
			fmt.Printf("Added slot for %s: %s\n", c.Code, args[1])
			return nil
		},
	}
}

func newSlotsRulesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rules CODE",
		Short: "List a company's slot rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			rules, err := app.Slots.Rules(ctx, c.ID)
			if err != nil {
				return err
			}
			if len(rules) == 0 {
				fmt.Println("No slot rules configured.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatRuleList(rules))
			return nil
		},
	}
}

func newSlotsClearCmd(app *App) *cobra.Command {
	var adhoc bool

	cmd := &cobra.Command{
		Use:   "clear CODE",
		Short: "Remove all slot rules for a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Slots.ClearRules(ctx, c.ID); err != nil {
				return err
			}
			if adhoc {
				if err := app.Slots.ClearAdhoc(ctx, c.ID); err != nil {
					return err
				}
			}
			fmt.Printf("Cleared slot rules for %s\n", c.Code)
			return nil
		},
	}

	cmd.Flags().BoolVar(&adhoc, "adhoc", false, "Also remove ad-hoc slots")

	return cmd
}
