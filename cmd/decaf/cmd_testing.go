package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fixtureConfig is the optional decaf.toml next to the fixture
// directory; command-line arguments override it.
type fixtureConfig struct {
	TestsDir string `toml:"tests_dir"`
	Pattern  string `toml:"pattern"`
}

func newTestCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "test [dir]",
		Short: "Parse every fixture file in a directory and tally pass/fail",
		Long: `Parse every fixture file in a directory and tally pass/fail.

Each fixture is fed through "decaf parse"; any output line containing
"Error: syntax error" counts the fixture as failing. The directory and
file pattern default to ./tests and *.dcf and can be set in decaf.toml:

  tests_dir = "tests"
  pattern = "*.dcf"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := fixtureConfig{TestsDir: "tests", Pattern: "*.dcf"}
			if _, err := toml.DecodeFile(configPath, &cfg); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("read %s: %w", configPath, err)
			}
			if len(args) == 1 {
				cfg.TestsDir = args[0]
			}
			return runFixtures(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "decaf.toml", "fixture runner config file")

	return cmd
}

func runFixtures(cmd *cobra.Command, cfg fixtureConfig) error {
	entries, err := os.ReadDir(cfg.TestsDir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", cfg.TestsDir, err)
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate own binary: %w", err)
	}

	out := cmd.OutOrStdout()
	passed, failed := 0, 0

	start := time.Now()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(cfg.Pattern, entry.Name())
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", cfg.Pattern, err)
		}
		if !ok {
			continue
		}

		path := filepath.Join(cfg.TestsDir, entry.Name())
		output, _ := exec.Command(exe, "parse", path).CombinedOutput()

		if bytes.Contains(output, []byte("Error: syntax error")) {
			fmt.Fprintf(out, " ❌Failed: %s\n", path)
			failed++
		} else {
			passed++
		}
	}
	elapsed := time.Since(start)

	if failed == 0 {
		fmt.Fprintf(out, "✔ Passed %d test cases in %fs\n", passed, elapsed.Seconds())
		return nil
	}

	fmt.Fprintf(out, "Failed %d/%d test cases in %fs\n", failed, failed+passed, elapsed.Seconds())
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("%d fixtures failed", failed)
}
