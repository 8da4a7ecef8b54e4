package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// installExtension writes an executable subtrack-<name> script in a directory
// added to the PATH.
func installExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts")
	}
	bin := t.TempDir()
	path := filepath.Join(bin, "subtrack-"+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("cannot write extension: %v", err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunExtension(t *testing.T) {
	installExtension(t, "hello", `echo "args=$*"
echo "SUBTRACK_DATA_DIR=$SUBTRACK_DATA_DIR"
echo "SUBTRACK_PRICES_FILE=$SUBTRACK_PRICES_FILE"
echo "SUBTRACK_USER=$SUBTRACK_USER"
echo "SUBTRACK_VERBOSE=$SUBTRACK_VERBOSE"
`)
	app := setup(t, "")
	*user = "alice"
	oldVerbose := *Verbose
	*Verbose = true
	t.Cleanup(func() { *Verbose = oldVerbose })

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found || code != 0 {
		t.Fatalf("RunExtension() = %v, %d, want true, 0, stderr:\n%s", found, code, app.stderr)
	}

	out := app.stdout.String()
	for _, want := range []string{
		"args=a b",
		"SUBTRACK_DATA_DIR=" + app.dir,
		"SUBTRACK_PRICES_FILE=prices.csv",
		"SUBTRACK_USER=alice",
		"SUBTRACK_VERBOSE=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("extension output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRunExtension_ExitCode(t *testing.T) {
	installExtension(t, "fail", "exit 3\n")
	setup(t, "")

	if found, code := RunExtension("fail", nil); !found || code != 3 {
		t.Errorf("RunExtension() = %v, %d, want true, 3", found, code)
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	setup(t, "")
	if found, _ := RunExtension("no-such-extension", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
