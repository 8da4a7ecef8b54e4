package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type cardCmd struct {
	show bool
}

func (*cardCmd) Name() string     { return "card" }
func (*cardCmd) Synopsis() string { return "register the payment card" }
func (*cardCmd) Usage() string {
	return `subtrack -user <user> card [-show]

  Prompts for the holder, number, expiry and CVV of a payment card, validates them
  and saves the card, replacing the previous one. Only the last four digits of
  the number are saved, the CVV never is.

  With -show, displays the saved card instead.
`
}

func (c *cardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.show, "show", false, "Display the saved card")
}

func (c *cardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, owner, status := authenticate()
	if status != subcommands.ExitSuccess {
		return status
	}
	if c.show {
		return exitStatus(showCard(cfg, owner))
	}
	return exitStatus(registerCard(cfg, owner))
}
