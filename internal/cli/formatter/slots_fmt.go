package formatter

import (
	"fmt"
	"strings"

	"github.com/mkoschel/slotcal/internal/contract"
	"github.com/mkoschel/slotcal/internal/domain"
)

// FormatSlotList renders an upcoming-slots response as a numbered list,
// with any rule warnings appended underneath.
func FormatSlotList(resp *contract.UpcomingSlotsResponse) string {
	var b strings.Builder
	b.WriteString(Header("Upcoming Slots — "+resp.CompanyCode) + "\n")

	if len(resp.Slots) == 0 {
		b.WriteString(Dim("No upcoming slots.") + "\n")
	}
	for i, s := range resp.Slots {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), StyleFg.Render(s)))
	}

	for _, w := range resp.Warnings {
		b.WriteString(StyleYellow.Render("! "+w) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// DescribeRule renders a slot rule as a one-line human description,
// e.g. "weekly on Monday, 9:00 AM - 5:00 PM".
func DescribeRule(r *domain.SlotRule) string {
	var parts []string
	parts = append(parts, r.Kind)

	if len(r.Positions) > 0 {
		parts = append(parts, "on the "+strings.Join(r.Positions, "/")+" "+r.Weekday)
	} else if r.Weekday != "" {
		parts = append(parts, "on "+r.Weekday)
	}
	if r.DayOfMonth > 0 && len(r.Positions) == 0 {
		parts = append(parts, fmt.Sprintf("day %d", r.DayOfMonth))
	}
	if len(r.Months) > 0 {
		parts = append(parts, "in "+strings.Join(r.Months, "/"))
	}

	clock := r.StartTime
	if r.EndTime != "" {
		clock += " - " + r.EndTime
	}
	if clock != "" {
		parts = append(parts, clock)
	}

	return strings.Join(parts, ", ")
}

// FormatRuleList renders slot rules as a table.
func FormatRuleList(rules []*domain.SlotRule) string {
	rows := make([][]string, 0, len(rules))
	for _, r := range rules {
		window := Dim("—")
		switch {
		case r.ValidFrom != nil && r.ValidUntil != nil:
			window = r.ValidFrom.Format("2006-01-02") + " to " + r.ValidUntil.Format("2006-01-02")
		case r.ValidFrom != nil:
			window = "from " + r.ValidFrom.Format("2006-01-02")
		case r.ValidUntil != nil:
			window = "until " + r.ValidUntil.Format("2006-01-02")
		}
		rows = append(rows, []string{
			TruncID(r.ID),
			StylePurple.Render(r.Kind),
			DescribeRule(r),
			window,
		})
	}
	return RenderTable([]string{"ID", "KIND", "RULE", "VALID"}, rows)
}

// FormatCompanyList renders companies as a table.
func FormatCompanyList(companies []*domain.Company) string {
	rows := make([][]string, 0, len(companies))
	for _, c := range companies {
		contact := c.Contact.PersonName
		if contact == "" {
			contact = "—"
		}
		rows = append(rows, []string{
			StyleGreen.Render(c.Code),
			StyleFg.Render(c.Name),
			Dim(contact),
		})
	}
	return RenderTable([]string{"CODE", "NAME", "CONTACT"}, rows)
}

// CompanyInspectData bundles everything the company inspect view shows.
type CompanyInspectData struct {
	Company   *domain.Company
	Questions []*domain.ScreeningQuestion
	Rules     []*domain.SlotRule
	Adhoc     []*domain.AdhocSlot
}

// FormatCompanyInspect renders the full detail view for a company.
func FormatCompanyInspect(data CompanyInspectData) string {
	c := data.Company

	var b strings.Builder
	b.WriteString(Header(c.Code+" — "+c.Name) + "\n")

	if c.Contact.PersonName != "" || c.Contact.Number != "" || c.Contact.Email != "" {
		b.WriteString(Bold("Contact: ") + c.Contact.PersonName)
		if c.Contact.Number != "" {
			b.WriteString("  " + Dim(c.Contact.Number))
		}
		if c.Contact.Email != "" {
			b.WriteString("  " + Dim(c.Contact.Email))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + Bold("Screening questions") + "\n")
	if len(data.Questions) == 0 {
		b.WriteString(Dim("  none configured") + "\n")
	}
	for i, q := range data.Questions {
		b.WriteString(fmt.Sprintf("  %2d. %s\n", i+1, q.Text))
	}

	b.WriteString("\n" + Bold("Slot rules") + "\n")
	if len(data.Rules) == 0 {
		b.WriteString(Dim("  none configured") + "\n")
	}
	for _, r := range data.Rules {
		b.WriteString("  • " + DescribeRule(r) + "\n")
	}

	if len(data.Adhoc) > 0 {
		b.WriteString("\n" + Bold("Ad-hoc slots") + "\n")
		for _, a := range data.Adhoc {
			b.WriteString("  • " + a.Text + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatApplicantList renders applicants as a table.
func FormatApplicantList(applicants []*domain.Applicant) string {
	rows := make([][]string, 0, len(applicants))
	for _, a := range applicants {
		scheduled := Dim("—")
		if a.ScheduledDate != "" {
			scheduled = a.ScheduledDate
			if a.ScheduledTime != "" {
				scheduled += " " + a.ScheduledTime
			}
		}
		rows = append(rows, []string{
			TruncID(a.ID),
			StyleFg.Render(a.Name),
			StatusPill(a.Status),
			scheduled,
		})
	}
	return RenderTable([]string{"ID", "NAME", "STATUS", "SCHEDULED"}, rows)
}

// FormatApplicantInspect renders the full detail view for an applicant.
func FormatApplicantInspect(a *domain.Applicant) string {
	var b strings.Builder
	b.WriteString(Header(a.Name) + "\n")
	b.WriteString(Bold("Status: ") + StatusPill(a.Status) + "\n")

	if a.SelectedSlot != "" {
		b.WriteString(Bold("Selected slot: ") + a.SelectedSlot + "\n")
	}
	if a.ScheduledDate != "" || a.ScheduledTime != "" {
		b.WriteString(Bold("Scheduled: ") + strings.TrimSpace(a.ScheduledDate+" "+a.ScheduledTime) + "\n")
	}

	if len(a.Responses) > 0 {
		b.WriteString("\n" + Bold("Responses") + "\n")
		for _, k := range sortedKeys(a.Responses) {
			b.WriteString(fmt.Sprintf("  %s: %v\n", Dim(k), a.Responses[k]))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatDecision renders the outcome of a screening decision.
func FormatDecision(result *contract.DecisionResult) string {
	var b strings.Builder
	b.WriteString("Applicant " + TruncID(result.ApplicantID) + " marked " + Bold(result.Status))

	if result.Schedule != nil {
		b.WriteString("\nInterview: " + StyleGreen.Render(result.Schedule.Slot))
		if result.Schedule.Date != "" {
			b.WriteString("\n  " + Dim("date:  ") + result.Schedule.Date)
		}
		if result.Schedule.Clock != "" {
			b.WriteString("\n  " + Dim("time:  ") + result.Schedule.Clock)
		}
	}

	return b.String()
}
