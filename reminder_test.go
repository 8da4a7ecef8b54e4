package subtrack

import (
	"testing"

	"github.com/etnz/subtrack/date"
	"github.com/google/go-cmp/cmp"
)

func TestUpcoming(t *testing.T) {
	records := []Record{
		rec("alice", "Netflix", "15"),
		rec("alice", "Spotify", "1"),
		rec("alice", "Hulu", "31"),
		rec("alice", "Gym", "monday"),
		rec("alice", "Apple", "15"),
		rec("alice", "Cloud", "10"),
	}
	from := date.MustParse("2025-04-28")

	reminders, skipped := Upcoming(records, from, 17)

	type due struct {
		Name string
		Due  string
		Days int
	}
	var got []due
	for _, r := range reminders {
		got = append(got, due{r.Name, r.Due.String(), r.Days})
	}
	want := []due{
		{"Hulu", "2025-04-30", 2}, // clamped to the end of april
		{"Spotify", "2025-05-01", 3},
		{"Cloud", "2025-05-10", 12},
		{"Apple", "2025-05-15", 17},
		{"Netflix", "2025-05-15", 17},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Upcoming() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Record{rec("alice", "Gym", "monday")}, skipped); diff != "" {
		t.Errorf("skipped mismatch (-want +got):\n%s", diff)
	}
}

func TestUpcoming_ZeroWindow(t *testing.T) {
	records := []Record{rec("alice", "Netflix", "15"), rec("alice", "Spotify", "16")}
	reminders, _ := Upcoming(records, date.MustParse("2025-04-15"), 0)
	if len(reminders) != 1 || reminders[0].Name != "Netflix" || reminders[0].Days != 0 {
		t.Errorf("Upcoming() = %v, want only Netflix due today", reminders)
	}
}
