// Package payment handles the mock payment card a user attaches to its
// account. Cards are validated but never charged; only a masked number is
// persisted and the security code is never written anywhere.
package payment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/subtrack/date"
)

var (
	ErrHolder  = errors.New("card holder is empty")
	ErrNumber  = errors.New("invalid card number")
	ErrExpiry  = errors.New("invalid expiry date")
	ErrExpired = errors.New("card has expired")
	ErrCVV     = errors.New("invalid security code")
)

// Card is a payment card as entered by the user.
type Card struct {
	Holder string
	Number string // digits, spaces and dashes allowed
	Expiry string // MM/YY
	CVV    string
}

// Validate checks every field of the card and reports all the problems found.
// today is used to reject expired cards.
func (c Card) Validate(today date.Date) error {
	var errs []error
	if strings.TrimSpace(c.Holder) == "" {
		errs = append(errs, ErrHolder)
	}
	if !Luhn(digits(c.Number)) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrNumber, Mask(c.Number)))
	}
	if month, year, err := ParseExpiry(c.Expiry); err != nil {
		errs = append(errs, err)
	} else if year < today.Year() || (year == today.Year() && month < today.Month()) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrExpired, c.Expiry))
	}
	if !isCVV(c.CVV) {
		errs = append(errs, ErrCVV)
	}
	return errors.Join(errs...)
}

// digits returns number without the spaces and dashes used to group digits.
func digits(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}

// Luhn reports whether number is 13 to 19 digits long with a valid Luhn checksum.
func Luhn(number string) bool {
	if len(number) < 13 || len(number) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ParseExpiry parses an expiry date in the MM/YY format.
func ParseExpiry(expiry string) (month time.Month, year int, err error) {
	mm, yy, ok := strings.Cut(strings.TrimSpace(expiry), "/")
	if !ok || len(mm) != 2 || len(yy) != 2 {
		return 0, 0, fmt.Errorf("%w: %q want MM/YY", ErrExpiry, expiry)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("%w: %q want MM/YY", ErrExpiry, expiry)
	}
	y, err := strconv.Atoi(yy)
	if err != nil || y < 0 {
		return 0, 0, fmt.Errorf("%w: %q want MM/YY", ErrExpiry, expiry)
	}
	return time.Month(m), 2000 + y, nil
}

func isCVV(cvv string) bool {
	if len(cvv) != 3 && len(cvv) != 4 {
		return false
	}
	for _, c := range cvv {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Mask hides all but the last four digits of number.
func Mask(number string) string {
	d := digits(number)
	if len(d) <= 4 {
		return strings.Repeat("*", len(d))
	}
	return strings.Repeat("*", len(d)-4) + d[len(d)-4:]
}
