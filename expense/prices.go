package expense

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Prices indexes the monthly price of subscriptions by name, ignoring case.
type Prices map[string]Money

// Lookup returns the price of the subscription called name.
func (p Prices) Lookup(name string) (Money, bool) {
	m, ok := p[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// DecodePrices reads a price list from r.
//
// The format is a CSV file with one row per subscription: name, monthly amount
// and an optional currency code. defaultCurrency applies to rows with no
// currency. A first row whose amount is the word "price" is a header and is
// skipped. filename is for error message only.
func DecodePrices(r io.Reader, filename, defaultCurrency string) (Prices, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	prices := make(Prices)
	for first := true; ; first = false {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse error %q: %w", filename, err)
		}
		line, _ := cr.FieldPos(0)
		if len(row) != 2 && len(row) != 3 {
			return nil, fmt.Errorf("format error %s:%d: want 2 or 3 fields got %d", filename, line, len(row))
		}
		if first && strings.EqualFold(strings.TrimSpace(row[1]), "price") {
			continue
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("format error %s:%d: invalid amount %q: %w", filename, line, row[1], err)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("format error %s:%d: negative amount %q", filename, line, row[1])
		}
		currency := defaultCurrency
		if len(row) == 3 && strings.TrimSpace(row[2]) != "" {
			currency = strings.ToUpper(strings.TrimSpace(row[2]))
		}
		if !ValidCurrency(currency) {
			return nil, fmt.Errorf("format error %s:%d: unknown currency %q", filename, line, currency)
		}

		key := strings.ToLower(strings.TrimSpace(row[0]))
		if _, exists := prices[key]; exists {
			return nil, fmt.Errorf("format error %s:%d: subscription %q is already priced", filename, line, row[0])
		}
		prices[key] = M(amount, currency)
	}
	return prices, nil
}

// LoadPrices reads the price list file at path. A missing file is an empty list.
func LoadPrices(path, defaultCurrency string) (Prices, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(Prices), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open prices file %q: %w", path, err)
	}
	defer f.Close()
	return DecodePrices(f, path, defaultCurrency)
}
