package date

import "fmt"

// Range represents a range of dates.
type Range struct{ From, To Date }

// Window returns the range of 'days' days starting on d, d included.
// A zero window only contains d.
func Window(d Date, days int) Range {
	if days < 0 {
		days = 0
	}
	return Range{From: d, To: d.Add(days)}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
