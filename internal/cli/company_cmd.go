package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mkoschel/slotcal/internal/cli/formatter"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/spf13/cobra"
)

// resolveCompany looks up a company by its code.
func resolveCompany(ctx context.Context, app *App, code string) (*domain.Company, error) {
	if code == "" {
		return nil, fmt.Errorf("company code is required")
	}
	c, err := app.Companies.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("company not found: %q", code)
	}
	return c, nil
}

func newCompanyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Manage companies",
	}

	cmd.AddCommand(
		newCompanyAddCmd(app),
		newCompanyListCmd(app),
		newCompanyInspectCmd(app),
		newCompanyUpdateCmd(app),
		newCompanyRemoveCmd(app),
		newCompanyImportCmd(app),
	)

	return cmd
}

func newCompanyAddCmd(app *App) *cobra.Command {
	var code, name, contact, number, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new company",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Company{
				Code: code,
				Name: name,
				Contact: domain.ContactInfo{
					PersonName: contact,
					Number:     number,
					Email:      email,
				},
			}
			if err := app.Companies.Register(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("Registered company %s [%s]\n", c.Name, c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Company code (e.g. DSP1042)")
	cmd.Flags().StringVar(&name, "name", "", "Company name")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact person name")
	cmd.Flags().StringVar(&number, "number", "", "Contact phone number")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCompanyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			companies, err := app.Companies.List(context.Background())
			if err != nil {
				return err
			}

			if len(companies) == 0 {
				fmt.Println("No companies found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatCompanyList(companies))
			return nil
		},
	}
}

func newCompanyInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect CODE",
		Short: "Show company details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}

			questions, _ := app.Companies.Questions(ctx, c.ID)
			rules, _ := app.Slots.Rules(ctx, c.ID)
			adhoc, _ := app.Slots.Adhoc(ctx, c.ID)

			fmt.Printf("%s\n", formatter.FormatCompanyInspect(formatter.CompanyInspectData{
				Company:   c,
				Questions: questions,
				Rules:     rules,
				Adhoc:     adhoc,
			}))
			return nil
		},
	}
}

func newCompanyUpdateCmd(app *App) *cobra.Command {
	var name, contact, number, email string

	cmd := &cobra.Command{
		Use:   "update CODE",
		Short: "Update a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("contact") {
				c.Contact.PersonName = contact
			}
			if cmd.Flags().Changed("number") {
				c.Contact.Number = number
			}
			if cmd.Flags().Changed("email") {
				c.Contact.Email = email
			}

			if err := app.Companies.Update(ctx, c); err != nil {
				return err
			}

			fmt.Printf("Updated company %s [%s]\n", c.Name, c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Company name")
	cmd.Flags().StringVar(&contact, "contact", "", "Contact person name")
	cmd.Flags().StringVar(&number, "number", "", "Contact phone number")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")

	return cmd
}

func newCompanyRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CODE",
		Short: "Remove a company and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Companies.Delete(ctx, c.ID); err != nil {
				return err
			}
			fmt.Printf("Removed company %s\n", c.Code)
			return nil
		},
	}
}

func newCompanyImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a company from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportCompany(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported company %s [%s] — %d questions, %d rules, %d ad-hoc slots\n",
				result.Company.Name, result.Company.Code,
				result.QuestionCount, result.RuleCount, result.AdhocCount)
			return nil
		},
	}
}

func newQuestionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Manage screening questions",
	}

	cmd.AddCommand(
		newQuestionsSetCmd(app),
		newQuestionsAddCmd(app),
		newQuestionsEditCmd(app),
		newQuestionsRemoveCmd(app),
		newQuestionsListCmd(app),
	)

	return cmd
}

func newQuestionsSetCmd(app *App) *cobra.Command {
	var questions []string

	cmd := &cobra.Command{
		Use:   "set CODE",
		Short: "Replace a company's screening script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Companies.SetQuestions(ctx, c.ID, questions); err != nil {
				return err
			}
			fmt.Printf("Set %d questions for %s\n", len(questions), c.Code)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&questions, "q", nil, "Question text (repeatable, in order)")
	_ = cmd.MarkFlagRequired("q")

	return cmd
}

func newQuestionsAddCmd(app *App) *cobra.Command {
	var criteria string

	cmd := &cobra.Command{
		Use:   "add CODE TEXT",
		Short: "Append a screening question",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Companies.AddQuestion(ctx, c.ID, args[1], criteria); err != nil {
				return err
			}
			fmt.Printf("Added question for %s\n", c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria, "criteria", "", "Pass criteria for the answer")

	return cmd
}

func newQuestionsEditCmd(app *App) *cobra.Command {
	var criteria string

	cmd := &cobra.Command{
		Use:   "edit CODE POSITION TEXT",
		Short: "Rewrite a screening question by its list position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			if err := app.Companies.UpdateQuestion(ctx, c.ID, position, args[2], criteria); err != nil {
				return err
			}
			fmt.Printf("Updated question %d for %s\n", position, c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&criteria, "criteria", "", "Pass criteria for the answer")

	return cmd
}

func newQuestionsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove CODE POSITION",
		Short: "Remove a screening question by its list position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[1])
			}
			if err := app.Companies.RemoveQuestion(ctx, c.ID, position); err != nil {
				return err
			}
			fmt.Printf("Removed question %d from %s\n", position, c.Code)
			return nil
		},
	}
}

func newQuestionsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list CODE",
		Short: "List a company's screening questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCompany(ctx, app, args[0])
			if err != nil {
				return err
			}
			questions, err := app.Companies.Questions(ctx, c.ID)
			if err != nil {
				return err
			}
			if len(questions) == 0 {
				fmt.Println("No questions configured.")
				return nil
			}
			for i, q := range questions {
				fmt.Printf("%2d. %s\n", i+1, q.Text)
			}
			return nil
		},
	}
}
