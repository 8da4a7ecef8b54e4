package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"github.com/etnz/subtrack/account"
	"github.com/etnz/subtrack/config"
)

// testApp is the state of the application during a test.
type testApp struct {
	dir            string
	stdout, stderr *bytes.Buffer
}

// setup points the application to a temporary data directory and captures its
// streams. input is the content of stdin.
func setup(t *testing.T, input string) *testApp {
	t.Helper()
	app := &testApp{dir: t.TempDir(), stdout: new(bytes.Buffer), stderr: new(bytes.Buffer)}

	oldIn, oldOut, oldErr, oldLogger := stdin, stdout, stderr, logger
	oldDir, oldUser := *dataDir, *user
	t.Cleanup(func() {
		stdin, stdout, stderr, logger = oldIn, oldOut, oldErr, oldLogger
		*dataDir, *user = oldDir, oldUser
		lines = nil
	})

	stdin, stdout, stderr = strings.NewReader(input), app.stdout, app.stderr
	lines = nil
	logger = zaptest.NewLogger(t)
	*dataDir = app.dir
	*user = ""
	for _, key := range []string{config.EnvSubscriptionsFile, config.EnvUsersFile, config.EnvPricesFile, config.EnvCardsFile, config.EnvCurrency, config.EnvRemindDays, config.EnvStrictDays} {
		t.Setenv(key, "")
	}
	unsetenv(t, config.EnvPassword)
	return app
}

// unsetenv removes key from the environment for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

// signedIn creates the account of username and signs it in for the next commands.
func (app *testApp) signedIn(t *testing.T, username, password string) {
	t.Helper()
	users, err := account.Open(filepath.Join(app.dir, "users.csv"), account.WithCost(bcrypt.MinCost))
	if err != nil {
		t.Fatalf("account.Open() unexpected error: %v", err)
	}
	if err := users.SignUp(username, password); err != nil {
		t.Fatalf("SignUp(%q) unexpected error: %v", username, err)
	}
	*user = username
	t.Setenv(config.EnvPassword, password)
}

func (app *testApp) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(app.dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile(%q) unexpected error: %v", path, err)
	}
	return path
}

func (app *testApp) read(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(app.dir, name))
	if err != nil {
		t.Fatalf("ReadFile(%q) unexpected error: %v", name, err)
	}
	return string(content)
}

// run parses args with the flags of c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("%s: cannot parse %q: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), fs)
}
