package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addCmd struct {
	name string
	day  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new subscription" }
func (*addCmd) Usage() string {
	return `subtrack -user <user> add -name <name> -day <payment day>

  Adds a new subscription for the signed in user:
  - name: The subscription's name (e.g., "Netflix"). Must be unique for the user.
  - day: The day of month the payment recurs (e.g., "15").
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Subscription name (required)")
	f.StringVar(&c.day, "day", "", "Payment day of month (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.day == "" {
		fmt.Fprintln(stderr, "Error: -name and -day flags are required.")
		return subcommands.ExitUsageError
	}

	cfg, owner, status := authenticate()
	if status != subcommands.ExitSuccess {
		return status
	}
	store, err := OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading subscriptions: %v\n", err)
		return subcommands.ExitFailure
	}
	return exitStatus(addSubscription(cfg, store, owner, c.name, c.day))
}
