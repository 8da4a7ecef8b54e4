package subtrack

import (
	"cmp"
	"slices"

	"github.com/etnz/subtrack/date"
)

// Reminder is an upcoming payment of a subscription.
type Reminder struct {
	Record
	Due  date.Date // next day the payment falls due.
	Days int       // days left until Due.
}

// Upcoming returns the payments of records falling due within 'window' days
// from 'from', both included, ordered by due date then name.
//
// Records whose payment day is not a day of month cannot be scheduled: they are
// returned in skipped.
func Upcoming(records []Record, from date.Date, window int) (reminders []Reminder, skipped []Record) {
	r := date.Window(from, window)
	for _, rec := range records {
		day, err := ParsePaymentDay(rec.PaymentDay)
		if err != nil {
			skipped = append(skipped, rec)
			continue
		}
		due := from.Next(day)
		if !r.Contains(due) {
			continue
		}
		reminders = append(reminders, Reminder{Record: rec, Due: due, Days: due.Sub(from)})
	}
	slices.SortStableFunc(reminders, func(a, b Reminder) int {
		if c := cmp.Compare(a.Days, b.Days); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return reminders, skipped
}
