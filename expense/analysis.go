package expense

import (
	"cmp"
	"slices"

	"github.com/etnz/subtrack"
)

// Item is a priced subscription.
type Item struct {
	subtrack.Record
	Price Money
}

// Summary is the cost of a set of subscriptions.
type Summary struct {
	Items    []Item            // priced subscriptions, in input order.
	Unpriced []subtrack.Record // subscriptions missing from the price list.
	Monthly  []Money           // one total per currency, ordered by currency code.
}

// Yearly returns the yearly totals, one per currency.
func (s Summary) Yearly() []Money {
	yearly := make([]Money, 0, len(s.Monthly))
	for _, m := range s.Monthly {
		yearly = append(yearly, m.Times(12))
	}
	return yearly
}

// Analyze prices every record and sums the monthly cost per currency.
func Analyze(records []subtrack.Record, prices Prices) Summary {
	var s Summary
	totals := make(map[string]Money)
	for _, r := range records {
		price, ok := prices.Lookup(r.Name)
		if !ok {
			s.Unpriced = append(s.Unpriced, r)
			continue
		}
		s.Items = append(s.Items, Item{Record: r, Price: price})
		totals[price.Currency()] = totals[price.Currency()].Add(price)
	}
	for _, m := range totals {
		s.Monthly = append(s.Monthly, m)
	}
	slices.SortFunc(s.Monthly, func(a, b Money) int { return cmp.Compare(a.Currency(), b.Currency()) })
	return s
}
