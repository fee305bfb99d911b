package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Maazi-78/Compiler/decaf/parser"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [file]",
		Short: "Dump the token stream of a Decaf source file (or stdin)",
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

			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			out := cmd.OutOrStdout()
			lexer := parser.NewLexer(data, file)
			for {
				tok := lexer.NextToken()
				switch tok.Kind {
				case parser.TokenWhitespace, parser.TokenComment:
					continue
				case parser.TokenEOF:
					return nil
				}
				fmt.Fprintf(out, "%4d  %-14s %s\n", tok.Span.Start.Line, tok.Kind, tok.Literal)
			}
		},
	}
}
