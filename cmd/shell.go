package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/subtrack"
	"github.com/etnz/subtrack/config"
	"github.com/etnz/subtrack/date"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "manage subscriptions interactively" }
func (*shellCmd) Usage() string {
	return `subtrack shell

  Starts an interactive session: sign in or sign up, then pick
  actions from a menu until you sign out.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (*shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := runShell(cfg); err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// runShell runs the welcome loop. It returns io.EOF when stdin is exhausted.
func runShell(cfg *config.Config) error {
	for {
		fmt.Fprintln(stdout, "\n1. Sign in\n2. Sign up\n3. Exit")
		choice, err := prompt("> ")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			owner, err := shellSignIn(cfg)
			if errors.Is(err, io.EOF) {
				return err
			}
			if err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				continue
			}
			if err := runMenu(cfg, owner); err != nil {
				return err
			}
		case "2":
			username, err := prompt("Username: ")
			if err != nil {
				return err
			}
			if err := signUp(cfg, strings.TrimSpace(username)); err != nil {
				if errors.Is(err, io.EOF) {
					return err
				}
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
		case "3":
			fmt.Fprintln(stdout, "Bye.")
			return nil
		default:
			fmt.Fprintf(stderr, "Unknown choice %q.\n", choice)
		}
	}
}

func shellSignIn(cfg *config.Config) (string, error) {
	username, err := prompt("Username: ")
	if err != nil {
		return "", err
	}
	username = strings.TrimSpace(username)
	users, err := OpenUsers(cfg)
	if err != nil {
		return "", err
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return "", err
	}
	if err := users.SignIn(username, password); err != nil {
		return "", err
	}
	fmt.Fprintf(stdout, "Welcome %s.\n", username)
	return username, nil
}

// menu lists the actions of a signed in user, in display order.
var menu = []struct {
	label string
	run   func(cfg *config.Config, store *subtrack.Store, owner string) error
}{
	{"Add a subscription", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		name, day, err := promptNameAndDay("Name: ", "Payment day: ")
		if err != nil {
			return err
		}
		return addSubscription(cfg, store, owner, name, day)
	}},
	{"Update a subscription", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		name, err := prompt("Name: ")
		if err != nil {
			return err
		}
		newName, day, err := promptNameAndDay("New name (empty to keep): ", "New payment day: ")
		if err != nil {
			return err
		}
		return updateSubscription(cfg, store, owner, strings.TrimSpace(name), newName, day)
	}},
	{"Delete a subscription", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		name, err := prompt("Name: ")
		if err != nil {
			return err
		}
		return deleteSubscription(store, owner, strings.TrimSpace(name))
	}},
	{"List my subscriptions", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		listSubscriptions(store, owner)
		return nil
	}},
	{"Find a subscription", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		name, err := prompt("Name: ")
		if err != nil {
			return err
		}
		findSubscription(store, owner, strings.TrimSpace(name))
		return nil
	}},
	{"Search subscriptions", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		term, err := prompt("Search term: ")
		if err != nil {
			return err
		}
		searchSubscriptions(store, owner, term)
		return nil
	}},
	{"Upcoming payments", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		return remindSubscriptions(store, owner, date.Today(), cfg.RemindDays)
	}},
	{"Monthly total", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		return totalSubscriptions(cfg, store, owner)
	}},
	{"Register a payment card", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		return registerCard(cfg, owner)
	}},
	{"Show my payment card", func(cfg *config.Config, store *subtrack.Store, owner string) error {
		return showCard(cfg, owner)
	}},
}

// runMenu loops over the actions menu until the user signs out.
func runMenu(cfg *config.Config, owner string) error {
	store, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	signOut := len(menu) + 1
	for {
		fmt.Fprintln(stdout)
		for i, item := range menu {
			fmt.Fprintf(stdout, "%d. %s\n", i+1, item.label)
		}
		fmt.Fprintf(stdout, "%d. Sign out\n", signOut)

		choice, err := prompt("> ")
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(choice))
		switch {
		case err != nil || n < 1 || n > signOut:
			fmt.Fprintf(stderr, "Unknown choice %q.\n", choice)
		case n == signOut:
			Logger().Debug("user signed out", zap.String("user", owner))
			return nil
		default:
			if err := menu[n-1].run(cfg, store, owner); err != nil {
				if errors.Is(err, io.EOF) {
					return err
				}
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
		}
	}
}

func promptNameAndDay(nameLabel, dayLabel string) (name, day string, err error) {
	if name, err = prompt(nameLabel); err != nil {
		return "", "", err
	}
	if day, err = prompt(dayLabel); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(name), strings.TrimSpace(day), nil
}
