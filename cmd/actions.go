package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/subtrack"
	"github.com/etnz/subtrack/config"
	"github.com/etnz/subtrack/date"
	"github.com/etnz/subtrack/expense"
	"github.com/etnz/subtrack/payment"
	"github.com/etnz/subtrack/renderer"
)

// The actions below are shared by the subcommands and the interactive shell.
// They print their result on stdout and return errors unprinted.

func addSubscription(cfg *config.Config, store *subtrack.Store, owner, name, day string) error {
	if err := checkPaymentDay(cfg, day); err != nil {
		return err
	}
	if err := store.Add(owner, name, day); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✅ Successfully added subscription '%s' paid on day %s.\n", name, day)
	return nil
}

func updateSubscription(cfg *config.Config, store *subtrack.Store, owner, name, newName, day string) error {
	if newName == "" {
		newName = name
	}
	if err := checkPaymentDay(cfg, day); err != nil {
		return err
	}
	if err := store.Update(owner, name, newName, day); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✅ Successfully updated subscription '%s' to '%s' paid on day %s.\n", name, newName, day)
	return nil
}

func deleteSubscription(store *subtrack.Store, owner, name string) error {
	if err := store.Delete(owner, name); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✅ Successfully deleted subscription '%s'.\n", name)
	return nil
}

func listSubscriptions(store *subtrack.Store, owner string) {
	fmt.Fprintln(stdout, renderer.Records(store.List(owner)))
}

func findSubscription(store *subtrack.Store, owner, name string) bool {
	found := store.Find(owner, name)
	fmt.Fprintln(stdout, "Subscription found:", found)
	return found
}

func searchSubscriptions(store *subtrack.Store, owner, term string) {
	fmt.Fprintf(stdout, "Search Results for '%s':\n", term)
	fmt.Fprintln(stdout, renderer.Records(store.Search(term, owner)))
}

func remindSubscriptions(store *subtrack.Store, owner string, from date.Date, days int) error {
	if days < 0 {
		return fmt.Errorf("invalid window %d: must not be negative", days)
	}
	reminders, skipped := subtrack.Upcoming(store.List(owner), from, days)
	for _, r := range skipped {
		Logger().Debug("payment day is not a day of month", zap.String("name", r.Name), zap.String("day", r.PaymentDay))
	}
	printMarkdown(renderer.ReminderReport(from, days, reminders, skipped))
	return nil
}

func totalSubscriptions(cfg *config.Config, store *subtrack.Store, owner string) error {
	prices, err := expense.LoadPrices(cfg.Path(cfg.PricesFile), cfg.Currency)
	if err != nil {
		return err
	}
	Logger().Debug("prices loaded", zap.Int("count", len(prices)))
	printMarkdown(renderer.ExpenseReport(owner, expense.Analyze(store.List(owner), prices)))
	return nil
}

// registerCard prompts for a payment card, validates it and saves it as the card of owner.
func registerCard(cfg *config.Config, owner string) error {
	var c payment.Card
	var err error
	if c.Holder, err = prompt("Card holder: "); err != nil {
		return err
	}
	if c.Number, err = prompt("Card number: "); err != nil {
		return err
	}
	if c.Expiry, err = prompt("Expiry (MM/YY): "); err != nil {
		return err
	}
	if c.CVV, err = readSecret("CVV: "); err != nil {
		return err
	}
	c.Holder = strings.TrimSpace(c.Holder)
	c.Expiry = strings.TrimSpace(c.Expiry)

	if err := c.Validate(date.Today()); err != nil {
		return err
	}
	saved, err := payment.SaveCard(cfg.Path(cfg.CardsFile), owner, c)
	if err != nil {
		return err
	}
	Logger().Info("card saved", zap.String("user", owner), zap.String("card", saved.Masked))
	fmt.Fprintf(stdout, "✅ Successfully saved card %s expiring %s.\n", saved.Masked, saved.Expiry)
	return nil
}

func showCard(cfg *config.Config, owner string) error {
	saved, ok, err := payment.CardFor(cfg.Path(cfg.CardsFile), owner)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(stdout, "No card saved.")
		return nil
	}
	fmt.Fprintf(stdout, "%s %s expiring %s\n", saved.Holder, saved.Masked, saved.Expiry)
	return nil
}

// isUsageError reports whether err is caused by invalid user input.
func isUsageError(err error) bool {
	return errors.Is(err, subtrack.ErrInvalidRecord) || errors.Is(err, subtrack.ErrInvalidPaymentDay)
}

// exitStatus reports err on stderr and converts it to an exit status.
func exitStatus(err error) subcommands.ExitStatus {
	switch {
	case err == nil:
		return subcommands.ExitSuccess
	case isUsageError(err):
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
}
