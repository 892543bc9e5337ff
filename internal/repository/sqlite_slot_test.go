package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/mkoschel/slotcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotRepo_RuleRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	companies := NewSQLiteCompanyRepo(database)
	slots := NewSQLiteSlotRepo(database)
	ctx := context.Background()

	c := testutil.MakeCompany("DSP1042")
	require.NoError(t, companies.Create(ctx, c))

	validFrom := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	rule := &domain.SlotRule{
		ID:        "r-1",
		CompanyID: c.ID,
		Kind:      "monthly",
		Weekday:   "monday",
		Positions: []string{"first", "third"},
		StartTime: "1 PM",
		ValidFrom: &validFrom,
		CreatedAt: testutil.FixedNow,
		UpdatedAt: testutil.FixedNow,
	}
	require.NoError(t, slots.CreateRule(ctx, rule))

	got, err := slots.ListRules(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"first", "third"}, got[0].Positions)
	assert.Equal(t, "1 PM", got[0].StartTime)
	require.NotNil(t, got[0].ValidFrom)
	assert.Equal(t, validFrom, *got[0].ValidFrom)
	assert.Nil(t, got[0].ValidUntil)
}

func TestSlotRepo_RejectsUnknownKind(t *testing.T) {
	database := testutil.NewTestDB(t)
	companies := NewSQLiteCompanyRepo(database)
	slots := NewSQLiteSlotRepo(database)
	ctx := context.Background()

	c := testutil.MakeCompany("DSP1042")
	require.NoError(t, companies.Create(ctx, c))

	rule := testutil.MakeWeeklyRule(c.ID, "monday", "9 AM", "5 PM")
	rule.Kind = "hourly"
	assert.Error(t, slots.CreateRule(ctx, rule), "schema constrains pattern kinds")
}

func TestSlotRepo_ReplaceRules(t *testing.T) {
	database := testutil.NewTestDB(t)
	companies := NewSQLiteCompanyRepo(database)
	slots := NewSQLiteSlotRepo(database)
	ctx := context.Background()

	c := testutil.MakeCompany("DSP1042")
	require.NoError(t, companies.Create(ctx, c))
	require.NoError(t, slots.CreateRule(ctx, testutil.MakeWeeklyRule(c.ID, "monday", "9 AM", "5 PM")))

	require.NoError(t, slots.ReplaceRules(ctx, c.ID, []*domain.SlotRule{
		testutil.MakeWeeklyRule(c.ID, "tuesday", "10 AM", ""),
	}))

	got, err := slots.ListRules(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tuesday", got[0].Weekday)
}

func TestSlotRepo_DeleteRulesLeavesAdhoc(t *testing.T) {
	database := testutil.NewTestDB(t)
	companies := NewSQLiteCompanyRepo(database)
	slots := NewSQLiteSlotRepo(database)
	ctx := context.Background()

	c := testutil.MakeCompany("DSP1042")
	require.NoError(t, companies.Create(ctx, c))
	require.NoError(t, slots.CreateRule(ctx, testutil.MakeWeeklyRule(c.ID, "monday", "9 AM", "5 PM")))
	require.NoError(t, slots.CreateAdhoc(ctx, &domain.AdhocSlot{
		ID: "a-1", CompanyID: c.ID, Text: "May 10, 2025 9 AM - 5 PM", CreatedAt: testutil.FixedNow,
	}))

	require.NoError(t, slots.DeleteRules(ctx, c.ID))

	rules, err := slots.ListRules(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, rules)

	adhoc, err := slots.ListAdhoc(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, adhoc, 1)
}

func TestSlotRepo_CascadeOnCompanyDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	companies := NewSQLiteCompanyRepo(database)
	slots := NewSQLiteSlotRepo(database)
	ctx := context.Background()

	c := testutil.MakeCompany("DSP1042")
	require.NoError(t, companies.Create(ctx, c))
	require.NoError(t, slots.CreateRule(ctx, testutil.MakeWeeklyRule(c.ID, "monday", "9 AM", "5 PM")))

	require.NoError(t, companies.Delete(ctx, c.ID))

	rules, err := slots.ListRules(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, rules)
}
