package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type updateCmd struct {
	name    string
	newName string
	day     string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "rename a subscription or change its payment day" }
func (*updateCmd) Usage() string {
	return `subtrack -user <user> update -name <name> [-new-name <name>] -day <payment day>

  Replaces the subscription called name with new-name, paid on day.
  The name is kept when -new-name is not set.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the subscription to update (required)")
	f.StringVar(&c.newName, "new-name", "", "New subscription name")
	f.StringVar(&c.day, "day", "", "New payment day of month (required)")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	return exitStatus(updateSubscription(cfg, store, owner, c.name, c.newName, c.day))
}
