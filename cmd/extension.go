package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"

	"github.com/etnz/subtrack/config"
)

// Environment passed to extensions on top of the resolved configuration.
const (
	EnvUser    = "SUBTRACK_USER"
	EnvVerbose = "SUBTRACK_VERBOSE"
)

// RunExtension attempts to find and execute an external subtrack-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "subtrack-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		Logger().Debug("external command not found in PATH", zap.String("command", name), zap.Error(err))
		return false, 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(), extensionEnv(cfg)...)

	Logger().Debug("running extension", zap.String("path", lp), zap.Strings("args", args))
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the global flags and the configuration as environment variables.
func extensionEnv(cfg *config.Config) []string {
	return []string{
		config.EnvDataDir + "=" + cfg.DataDir,
		config.EnvSubscriptionsFile + "=" + cfg.SubscriptionsFile,
		config.EnvUsersFile + "=" + cfg.UsersFile,
		config.EnvPricesFile + "=" + cfg.PricesFile,
		config.EnvCardsFile + "=" + cfg.CardsFile,
		config.EnvCurrency + "=" + cfg.Currency,
		config.EnvRemindDays + "=" + strconv.Itoa(cfg.RemindDays),
		config.EnvStrictDays + "=" + strconv.FormatBool(cfg.StrictDays),
		EnvUser + "=" + *user,
		EnvVerbose + "=" + strconv.FormatBool(*Verbose),
	}
}
