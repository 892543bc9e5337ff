package cli

import (
	"testing"

	"github.com/mkoschel/slotcal/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseShowsCompanies(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, execute(t, app,
		"company", "add", "--code", "DSP1042", "--name", "Test Logistics"))
	require.NoError(t, execute(t, app,
		"company", "add", "--code", "DSP2000", "--name", "North Hub"))

	d := teatest.New(t, newBrowseModel(app))

	view := d.View()
	assert.Contains(t, view, "DSP1042")
	assert.Contains(t, view, "DSP2000")
}

func TestBrowseSelectCompanyShowsSlots(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, execute(t, app,
		"company", "add", "--code", "DSP1042", "--name", "Test Logistics"))
	require.NoError(t, execute(t, app,
		"slots", "add", "DSP1042", "May 10, 2025 9 AM - 5 PM"))

	d := teatest.New(t, newBrowseModel(app))
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "May 10, 2025 9 AM - 5 PM")

	// esc returns to the company list.
	d.PressEsc()
	assert.Contains(t, d.View(), "COMPANIES")
}

func TestBrowseCompanyWithoutSlots(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, execute(t, app,
		"company", "add", "--code", "DSP1042", "--name", "Test Logistics"))

	d := teatest.New(t, newBrowseModel(app))
	d.PressEnter()

	// The listing error is surfaced in the view rather than crashing the TUI.
	assert.Contains(t, d.View(), "NO_SLOT_RULES")
}

func TestBrowseNavigationAndQuit(t *testing.T) {
	app := newTestApp(t)
	require.NoError(t, execute(t, app,
		"company", "add", "--code", "DSP1042", "--name", "Test Logistics"))
	require.NoError(t, execute(t, app,
		"company", "add", "--code", "DSP2000", "--name", "North Hub"))

	d := teatest.New(t, newBrowseModel(app))
	d.PressDown()
	d.PressUp()
	d.PressDown()

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
