package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"go.uber.org/zap"

	"github.com/etnz/subtrack"
)

type importLegacyCmd struct {
	in string
}

func (*importLegacyCmd) Name() string { return "import-legacy" }
func (*importLegacyCmd) Synopsis() string {
	return "import subscriptions from the legacy multi-subscription rows"
}
func (*importLegacyCmd) Usage() string {
	return `subtrack -user <user> import-legacy -in <file>

  Imports the subscriptions of the signed in user from a legacy file where
  each row holds an owner followed by name and payment day pairs.
  A trailing name without a day is dropped. Rows of other owners,
  subscriptions that already exist and invalid ones are skipped.
`
}

func (c *importLegacyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "", "Legacy file to import (required)")
}

func (c *importLegacyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == "" {
		fmt.Fprintln(stderr, "Error: -in flag is required.")
		return subcommands.ExitUsageError
	}
	cfg, owner, status := authenticate()
	if status != subcommands.ExitSuccess {
		return status
	}

	in, err := os.Open(c.in)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening %q: %v\n", c.in, err)
		return subcommands.ExitFailure
	}
	defer in.Close()
	records, err := subtrack.DecodeWideRows(in, c.in)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	store, err := OpenStore(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading subscriptions: %v\n", err)
		return subcommands.ExitFailure
	}
	imported, skipped := 0, 0
	for _, r := range records {
		if r.Owner != owner {
			Logger().Warn("subscription of another user skipped", zap.Stringer("subscription", r))
			skipped++
			continue
		}
		err := store.Add(r.Owner, r.Name, r.PaymentDay)
		switch {
		case err == nil:
			imported++
		case errors.Is(err, subtrack.ErrDuplicate), errors.Is(err, subtrack.ErrInvalidRecord):
			Logger().Warn("subscription skipped", zap.Stringer("subscription", r), zap.Error(err))
			skipped++
		default:
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Fprintf(stdout, "✅ Imported %d subscriptions, skipped %d.\n", imported, skipped)
	return subcommands.ExitSuccess
}
