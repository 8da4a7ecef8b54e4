// Package cmd implements the CLI application to track subscriptions.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/etnz/subtrack"
	"github.com/etnz/subtrack/account"
	"github.com/etnz/subtrack/config"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&signupCmd{}, "account")
	c.Register(&shellCmd{}, "account")

	c.Register(&addCmd{}, "subscriptions")
	c.Register(&updateCmd{}, "subscriptions")
	c.Register(&deleteCmd{}, "subscriptions")
	c.Register(&listCmd{}, "subscriptions")
	c.Register(&findCmd{}, "subscriptions")
	c.Register(&searchCmd{}, "subscriptions")
	c.Register(&importLegacyCmd{}, "subscriptions")

	c.Register(&remindCmd{}, "reports")
	c.Register(&totalCmd{}, "reports")

	c.Register(&cardCmd{}, "payment")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataDir           = flag.String("data-dir", "", "Directory of the data files (default $"+config.EnvDataDir+" or the current directory)")
	subscriptionsFile = flag.String("subscriptions-file", "", "Subscriptions file (default $"+config.EnvSubscriptionsFile+" or subscriptions.csv)")
	usersFile         = flag.String("users-file", "", "Users file (default $"+config.EnvUsersFile+" or users.csv)")
	pricesFile        = flag.String("prices-file", "", "Prices file (default $"+config.EnvPricesFile+" or prices.csv)")
	cardsFile         = flag.String("cards-file", "", "Payment cards file (default $"+config.EnvCardsFile+" or cards.csv)")
	user              = flag.String("user", "", "Username to sign in with")
	Verbose           = flag.Bool("v", false, "Verbose logging")
)

// terminal streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr

	lines *bufio.Reader // buffered stdin shared by all prompts
)

// loadConfig returns the configuration from the environment overridden by the global flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	override := func(dst *string, flagValue string) {
		if flagValue != "" {
			*dst = flagValue
		}
	}
	override(&cfg.DataDir, *dataDir)
	override(&cfg.SubscriptionsFile, *subscriptionsFile)
	override(&cfg.UsersFile, *usersFile)
	override(&cfg.PricesFile, *pricesFile)
	override(&cfg.CardsFile, *cardsFile)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var logger *zap.Logger

// Logger returns the application logger, writing to stderr. Only warnings and
// errors are logged unless -v is set.
func Logger() *zap.Logger {
	if logger != nil {
		return logger
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if *Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := zcfg.Build()
	if err != nil {
		fmt.Fprintf(stderr, "warning, cannot create logger: %v\n", err)
		l = zap.NewNop()
	}
	logger = l
	return logger
}

// OpenStore opens the subscriptions store of the app data folder.
func OpenStore(cfg *config.Config) (*subtrack.Store, error) {
	return subtrack.Open(cfg.Path(cfg.SubscriptionsFile), subtrack.WithLogger(Logger().Named("store")))
}

// OpenUsers opens the users file of the app data folder.
func OpenUsers(cfg *config.Config) (*account.Users, error) {
	return account.Open(cfg.Path(cfg.UsersFile), account.WithLogger(Logger().Named("account")))
}

// signIn authenticates the -user with its password and returns the username.
func signIn(cfg *config.Config) (string, error) {
	if *user == "" {
		return "", fmt.Errorf("the -user flag is required")
	}
	users, err := OpenUsers(cfg)
	if err != nil {
		return "", err
	}
	password, err := readPassword("Password: ")
	if err != nil {
		return "", err
	}
	if err := users.SignIn(*user, password); err != nil {
		return "", err
	}
	return *user, nil
}

// authenticate loads the configuration and signs the -user in, reporting
// failures on stderr.
func authenticate() (*config.Config, string, subcommands.ExitStatus) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, "", subcommands.ExitFailure
	}
	owner, err := signIn(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if *user == "" {
			return nil, "", subcommands.ExitUsageError
		}
		return nil, "", subcommands.ExitFailure
	}
	return cfg, owner, subcommands.ExitSuccess
}

// prompt prints label and reads a line from stdin, without the line ending.
func prompt(label string) (string, error) {
	fmt.Fprint(stdout, label)
	if lines == nil {
		lines = bufio.NewReader(stdin)
	}
	line, err := lines.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readPassword returns the password from the environment, or prompts for it
// without echo when stdin is a terminal.
func readPassword(label string) (string, error) {
	if password, ok := os.LookupEnv(config.EnvPassword); ok {
		return password, nil
	}
	return readSecret(label)
}

// readSecret prompts for a value, without echo when stdin is a terminal.
func readSecret(label string) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stdout, label)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(stdout)
		return string(secret), err
	}
	return prompt(label)
}

// printMarkdown prints markdown text, styled when stdout is a terminal.
func printMarkdown(md string) {
	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

// checkPaymentDay rejects days that are not a day of month, in strict mode only.
func checkPaymentDay(cfg *config.Config, day string) error {
	if !cfg.StrictDays {
		return nil
	}
	_, err := subtrack.ParsePaymentDay(day)
	return err
}
