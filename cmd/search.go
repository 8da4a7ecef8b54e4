package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type searchCmd struct {
	all bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search subscriptions by name or payment day" }
func (*searchCmd) Usage() string {
	return `subtrack -user <user> search [-all] <search term>

  Displays the subscriptions whose name or payment day is the search term,
  ignoring case. Only whole values match.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Search the subscriptions of all users")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")

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

	searchSubscriptions(store, owner, term)
	return subcommands.ExitSuccess
}
