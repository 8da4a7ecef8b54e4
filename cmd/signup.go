package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/etnz/subtrack/account"
	"github.com/etnz/subtrack/config"
)

type signupCmd struct{}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a user account" }
func (*signupCmd) Usage() string {
	return `subtrack -user <user> signup

  Creates the account of user. The password is prompted for twice,
  or read from $SUBTRACK_PASSWORD.
`
}

func (*signupCmd) SetFlags(f *flag.FlagSet) {}

func (*signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if *user == "" {
		fmt.Fprintln(stderr, "Error: the -user flag is required.")
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := signUp(cfg, *user); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// signUp prompts for a confirmed password and creates the account of username.
func signUp(cfg *config.Config, username string) error {
	users, err := OpenUsers(cfg)
	if err != nil {
		return err
	}
	if users.Exists(username) {
		return fmt.Errorf("%w: %q", account.ErrUserExists, username)
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}
	if err := users.SignUp(username, password); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "✅ Successfully signed up '%s'.\n", username)
	return nil
}
