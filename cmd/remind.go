package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/subtrack/date"
)

type remindCmd struct {
	days int
	from string
}

func (*remindCmd) Name() string     { return "remind" }
func (*remindCmd) Synopsis() string { return "list the payments due soon" }
func (*remindCmd) Usage() string {
	return `subtrack -user <user> remind [-days <n>] [-from <date>]

  Lists the subscriptions whose next payment falls within n days from the given date (default today).
  Payment days past the end of a month are paid on its last day.
`
}

func (c *remindCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", -1, "Reminder window in days (default $SUBTRACK_REMIND_DAYS or 7)")
	f.StringVar(&c.from, "from", "", "First day of the window in YYYY-MM-DD format (default today)")
}

func (c *remindCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from := date.Today()
	if c.from != "" {
		var err error
		if from, err = date.Parse(c.from); err != nil {
			fmt.Fprintf(stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	cfg, owner, status := authenticate()
	if status != subcommands.ExitSuccess {
		return status
	}
	days := c.days
	if days < 0 {
		days = cfg.RemindDays
	}

	store, err := OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading subscriptions: %v\n", err)
		return subcommands.ExitFailure
	}
	return exitStatus(remindSubscriptions(store, owner, from, days))
}
