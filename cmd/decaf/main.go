package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "decaf",
		Short: "A front end for the Decaf language",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newTestCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
