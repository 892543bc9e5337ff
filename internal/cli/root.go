package cli

import (
	"github.com/mkoschel/slotcal/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Companies service.CompanyService
	Slots     service.SlotService
	Screening service.ScreeningService
	Import    service.ImportService

	// IsInteractive reports whether stdin is a terminal. Interactive
	// commands (wizard, browse) refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "slotcal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "slotcal",
		Short: "Interview slot scheduling for driver screening",
	}

	root.AddCommand(
		newCompanyCmd(app),
		newQuestionsCmd(app),
		newSlotsCmd(app),
		newApplicantCmd(app),
	)

	return root
}
