package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mkoschel/slotcal/internal/cli"
	"github.com/mkoschel/slotcal/internal/db"
	"github.com/mkoschel/slotcal/internal/repository"
	"github.com/mkoschel/slotcal/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.slotcal/slotcal.db
	dbPath := os.Getenv("SLOTCAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".slotcal", "slotcal.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	companyRepo := repository.NewSQLiteCompanyRepo(database)
	questionRepo := repository.NewSQLiteQuestionRepo(database)
	slotRepo := repository.NewSQLiteSlotRepo(database)
	applicantRepo := repository.NewSQLiteApplicantRepo(database)

	app := &cli.App{
		Companies: service.NewCompanyService(companyRepo, questionRepo),
		Slots:     service.NewSlotService(companyRepo, slotRepo),
		Screening: service.NewScreeningService(companyRepo, applicantRepo),
		Import:    service.NewImportService(companyRepo, questionRepo, slotRepo),
	}

	// Detect interactive terminal for the wizard and browser entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
