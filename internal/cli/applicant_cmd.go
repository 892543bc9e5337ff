package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkoschel/slotcal/internal/cli/formatter"
	"github.com/mkoschel/slotcal/internal/contract"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/spf13/cobra"
)

func newApplicantCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applicant",
		Short: "Manage screened applicants",
	}

	cmd.AddCommand(
		newApplicantAddCmd(app),
		newApplicantListCmd(app),
		newApplicantInspectCmd(app),
		newApplicantDecideCmd(app),
	)

	return cmd
}

func newApplicantAddCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add CODE",
		Short: "Register an applicant for a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}

			a := &domain.Applicant{CompanyID: c.ID, Name: name}
			if err := app.Screening.Register(ctx, a); err != nil {
				return err
			}

			fmt.Printf("Registered applicant %s (%s) for %s\n", a.Name, a.ID[:8], c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Applicant name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newApplicantListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list CODE",
		Short: "List a company's applicants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			applicants, err := app.Screening.ListByCompany(ctx, c.ID)
			if err != nil {
				return err
			}
			if len(applicants) == 0 {
				fmt.Println("No applicants found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatApplicantList(applicants))
			return nil
		},
	}
}

func newApplicantInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show applicant details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Screening.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatApplicantInspect(a))
			return nil
		},
	}
}

func newApplicantDecideCmd(app *App) *cobra.Command {
	var pass, fail bool
	var responses []string

	cmd := &cobra.Command{
		Use:   "decide ID",
		Short: "Record a screening decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pass == fail {
				return fmt.Errorf("exactly one of --pass or --fail is required")
			}

			req := contract.DecisionRequest{
				ApplicantID: args[0],
				Passed:      pass,
			}
			if len(responses) > 0 {
				req.Responses = make(map[string]any, len(responses))
				for _, r := range responses {
					parts := strings.SplitN(r, "=", 2)
					if len(parts) != 2 {
						return fmt.Errorf("invalid --response format %q, expected key=value", r)
					}
					req.Responses[parts[0]] = parts[1]
				}
			}

			result, err := app.Screening.Decide(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatDecision(result))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pass, "pass", false, "Mark the applicant as passed")
	cmd.Flags().BoolVar(&fail, "fail", false, "Mark the applicant as failed")
	cmd.Flags().StringArrayVar(&responses, "response", nil, "Screening response (key=value, repeatable)")

	return cmd
}
