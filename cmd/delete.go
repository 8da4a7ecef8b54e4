package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	name string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a subscription" }
func (*deleteCmd) Usage() string {
	return `subtrack -user <user> delete -name <name>

  Deletes the subscription called name. Nothing is written when there is no such subscription.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the subscription to delete (required)")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		fmt.Fprintln(stderr, "Error: -name flag is required.")
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
	return exitStatus(deleteSubscription(store, owner, c.name))
}
