package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type totalCmd struct{}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "report the monthly and yearly cost of subscriptions" }
func (*totalCmd) Usage() string {
	return `subtrack -user <user> total

  Prices the subscriptions of the signed in user with the price list
  and reports the monthly and yearly totals per currency.
  Subscriptions missing from the price list are listed apart.
`
}

func (*totalCmd) SetFlags(f *flag.FlagSet) {}

func (*totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, owner, status := authenticate()
	if status != subcommands.ExitSuccess {
		return status
	}
	store, err := OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading subscriptions: %v\n", err)
		return subcommands.ExitFailure
	}
	return exitStatus(totalSubscriptions(cfg, store, owner))
}
