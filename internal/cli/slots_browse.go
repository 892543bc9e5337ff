package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkoschel/slotcal/internal/cli/formatter"
	"github.com/mkoschel/slotcal/internal/contract"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/spf13/cobra"
)

// companiesLoadedMsg signals that the company list has been loaded.
type companiesLoadedMsg struct {
	companies []*domain.Company
	err       error
}

// slotsLoadedMsg signals that upcoming slots for a company have been loaded.
type slotsLoadedMsg struct {
	resp *contract.UpcomingSlotsResponse
	err  error
}

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

var browseKeys = browseKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// browseModel is a two-level browser: pick a company, see its openings.
type browseModel struct {
	app *App

	companies []*domain.Company
	cursor    int
	loading   bool
	err       error

	// Non-nil when showing a company's slots.
	slots *contract.UpcomingSlotsResponse
	// Set when the slot listing itself failed (e.g. no rules configured).
	slotsErr error
}

func newBrowseModel(app *App) *browseModel {
	return &browseModel{app: app, loading: true}
}

func (m *browseModel) Init() tea.Cmd {
	return m.loadCompanies()
}

func (m *browseModel) loadCompanies() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		companies, err := app.Companies.List(context.Background())
		return companiesLoadedMsg{companies: companies, err: err}
	}
}

func (m *browseModel) loadSlots(code string) tea.Cmd {
	app := m.app
	return func() tea.Msg {
		resp, err := app.Slots.Upcoming(context.Background(), contract.NewUpcomingSlotsRequest(code))
		return slotsLoadedMsg{resp: resp, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case companiesLoadedMsg:
		m.loading = false
		m.companies = msg.companies
		m.err = msg.err
		return m, nil

	case slotsLoadedMsg:
		m.loading = false
		m.slots = msg.resp
		m.slotsErr = msg.err
		if m.slotsErr != nil {
			m.slots = &contract.UpcomingSlotsResponse{}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browseKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browseKeys.Back):
			if m.slots != nil {
				m.slots = nil
				m.slotsErr = nil
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, browseKeys.Up):
			if m.slots == nil && m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, browseKeys.Down):
			if m.slots == nil && m.cursor < len(m.companies)-1 {
				m.cursor++
			}
		case key.Matches(msg, browseKeys.Select):
			if m.slots == nil && m.cursor < len(m.companies) {
				m.loading = true
				return m, m.loadSlots(m.companies[m.cursor].Code)
			}
		}
	}
	return m, nil
}

func (m *browseModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading...") + "\n"
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.slots != nil {
		return m.slotsView()
	}
	return m.companiesView()
}

func (m *browseModel) companiesView() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header("Companies") + "\n\n")

	if len(m.companies) == 0 {
		b.WriteString("  " + formatter.Dim("No companies registered.") + "\n")
		return b.String()
	}

	for i, c := range m.companies {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("  %s%-9s %s\n",
			cursor,
			formatter.StyleGreen.Render(c.Code),
			nameStyle.Render(c.Name),
		))
	}

	b.WriteString("\n  " + formatter.Dim("enter: view slots   q: quit") + "\n")
	return b.String()
}

func (m *browseModel) slotsView() string {
	var b strings.Builder
	title := "Upcoming Slots"
	if m.slots.CompanyCode != "" {
		title = "Upcoming Slots — " + m.slots.CompanyCode
	}
	b.WriteString("\n  " + formatter.Header(title) + "\n\n")

	if m.slotsErr != nil {
		b.WriteString("  " + formatter.StyleYellow.Render(m.slotsErr.Error()) + "\n")
	} else if len(m.slots.Slots) == 0 {
		b.WriteString("  " + formatter.Dim("No upcoming slots.") + "\n")
	} else {
		for i, s := range m.slots.Slots {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				formatter.Dim(fmt.Sprintf("%2d.", i+1)),
				formatter.StyleFg.Render(s),
			))
		}
	}

	b.WriteString("\n  " + formatter.Dim("esc: back   q: quit") + "\n")
	return b.String()
}

func newSlotsBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse upcoming slots interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("browse requires an interactive terminal")
			}

			p := tea.NewProgram(newBrowseModel(app))
			_, err := p.Run()
			return err
		},
	}
}
