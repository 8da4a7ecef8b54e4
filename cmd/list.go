package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type listCmd struct {
	all bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display subscriptions" }
func (*listCmd) Usage() string {
	return `subtrack -user <user> list [-all]

  Displays the subscriptions of the signed in user, or everybody's with -all.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "List the subscriptions of all users")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, owner, status := authenticate()
	if status != subcommands.ExitSuccess {
		return status
	}
	store, err := OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading subscriptions: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.all {
		owner = ""
	}
	listSubscriptions(store, owner)
	return subcommands.ExitSuccess
}
