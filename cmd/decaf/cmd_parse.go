package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Maazi-78/Compiler/decaf/parser"
	"github.com/Maazi-78/Compiler/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a Decaf source file (or stdin) and print its parse tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			file := "<stdin>"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
				file = args[0]
			}

			stderr := cmd.ErrOrStderr()
			tree, err := parser.ParseProgram(in,
				parser.WithFile(file),
				parser.WithErrorHandler(func(lexErr *parser.LexicalError) {
					fmt.Fprintln(stderr, lexErr)
				}))
			if err != nil {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				fmt.Fprintln(stderr, err)
				return err
			}

			out := cmd.OutOrStdout()
			switch outputFormat {
			case "json":
				enc := format.NewASTJSONEncoder(out)
				if err := enc.Encode(tree); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Fprintln(out)
			case "tree":
				fmt.Fprintln(out, "Parsing successful!")
				if err := format.NewTreeEncoder(out).Encode(tree); err != nil {
					return fmt.Errorf("encode tree: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")

	return cmd
}
