// Command subtrack tracks the recurring subscriptions of its users.
package main

import (
	"context"
	"flag"
	"os"
	"path"
	"strings"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/subtrack/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	// Shell completion, active only when invoked by the shell's completion.
	completion(commander).Complete("subtrack")

	flag.Parse()
	code := run(commander)
	_ = cmd.Logger().Sync()
	os.Exit(code)
}

// run executes the selected subcommand, or the extension of that name when
// there is no such subcommand.
func run(commander *subcommands.Commander) int {
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			return code
		}
	}
	return int(commander.Execute(context.Background()))
}

// registered reports whether name is a subcommand of commander.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		found = found || c.Name() == name
	})
	return found
}

// completion describes the subcommands and their flags for shell completion.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flags(fs)}
	})
	return root
}

func flags(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case strings.HasSuffix(f.Name, "-file") || f.Name == "in":
			predictors[f.Name] = predict.Files("*.csv")
		case f.Name == "data-dir":
			predictors[f.Name] = predict.Dirs("*")
		case isBool(f):
			predictors[f.Name] = predict.Nothing
		default:
			predictors[f.Name] = predict.Something
		}
	})
	return predictors
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
