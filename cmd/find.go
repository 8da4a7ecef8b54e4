package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type findCmd struct {
	name string
}

func (*findCmd) Name() string     { return "find" }
func (*findCmd) Synopsis() string { return "check whether a subscription exists" }
func (*findCmd) Usage() string {
	return `subtrack -user <user> find -name <name>

  Tells whether the signed in user has a subscription with exactly that name.
  Exits with a failure status when it does not.
`
}

func (c *findCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Subscription name (required)")
}

func (c *findCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if !findSubscription(store, owner, c.name) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
