package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/subtrack"
	"github.com/etnz/subtrack/date"
	"github.com/etnz/subtrack/expense"
)

func TestExpenseReport(t *testing.T) {
	records := []subtrack.Record{
		{Owner: "alice", Name: "Netflix", PaymentDay: "15"},
		{Owner: "alice", Name: "Gym", PaymentDay: "3"},
	}
	s := expense.Analyze(records, expense.Prices{"netflix": expense.M(10, "USD")})

	out := ExpenseReport("alice", s)
	for _, want := range []string{"# Expenses of alice", "Netflix", "$10.00", "$120.00", "## Unpriced", "Gym"} {
		if !strings.Contains(out, want) {
			t.Errorf("report does not contain %q:\n%s", want, out)
		}
	}
}

func TestExpenseReport_NothingPriced(t *testing.T) {
	out := ExpenseReport("bob", expense.Analyze(nil, expense.Prices{}))
	if !strings.Contains(out, "No priced subscriptions.") {
		t.Errorf("report:\n%s", out)
	}
	if strings.Contains(out, "Unpriced") {
		t.Errorf("an empty report must not have an Unpriced section:\n%s", out)
	}
}

func TestReminderReport(t *testing.T) {
	from := date.MustParse("2025-04-28")
	records := []subtrack.Record{
		{Owner: "alice", Name: "Netflix", PaymentDay: "28"},
		{Owner: "alice", Name: "Spotify", PaymentDay: "29"},
		{Owner: "alice", Name: "Hulu", PaymentDay: "1"},
		{Owner: "alice", Name: "Gym", PaymentDay: "monday"},
	}
	reminders, skipped := subtrack.Upcoming(records, from, 7)

	out := ReminderReport(from, 7, reminders, skipped)
	for _, want := range []string{"2025-04-28..2025-05-05", "today", "tomorrow", "3 days", "## Unscheduled", "Gym"} {
		if !strings.Contains(out, want) {
			t.Errorf("report does not contain %q:\n%s", want, out)
		}
	}
}

func TestReminderReport_Nothing(t *testing.T) {
	out := ReminderReport(date.MustParse("2025-04-28"), 3, nil, nil)
	if !strings.Contains(out, "Nothing due in the next 3 days.") {
		t.Errorf("report:\n%s", out)
	}
}
