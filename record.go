package subtrack

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is a tracked subscription.
type Record struct {
	Owner      string // user the subscription belongs to.
	Name       string // subscription or service name, unique per owner.
	PaymentDay string // day of month the payment recurs, free text.
}

func (r Record) String() string {
	return fmt.Sprintf("%s/%s (day %s)", r.Owner, r.Name, r.PaymentDay)
}

// Validate checks the fields that must be set on a new or updated record.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Owner) == "" {
		return fmt.Errorf("%w: owner is empty", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: subscription name is empty", ErrInvalidRecord)
	}
	for _, field := range r.row() {
		if strings.ContainsAny(field, "\r\n") {
			return fmt.Errorf("%w: %q contains a line break", ErrInvalidRecord, field)
		}
	}
	return nil
}

// is reports whether r is the record of owner named name.
func (r Record) is(owner, name string) bool { return r.Owner == owner && r.Name == name }

// row returns the canonical fields of the record.
func (r Record) row() []string { return []string{r.Owner, r.Name, r.PaymentDay} }

// ParsePaymentDay parses a payment day as stored in a record.
// It accepts surrounding spaces and requires a day of month between 1 and 31.
func ParsePaymentDay(s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || day < 1 || day > 31 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPaymentDay, s)
	}
	return day, nil
}
