// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"

	"github.com/creachadair/jparse"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

func newTokensCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [FILE]",
		Short: "Print the tokens of a file, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			t := jparse.NewTokenizer(text)
			t.AllowComments(s.Comments)
			t.LenientKeywords(s.Lenient)

			out := cmd.OutOrStdout()
			var n int
			for {
				tok, err := t.Next()
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				} else if tok.Kind == jparse.EndOfInput {
					break
				}
				fmt.Fprintf(out, "%s\t%v\n", t.Location(tok.Span), tok)
				n++
			}
			level.Debug(s.logger).Log("msg", "scanned input", "file", name, "bytes", len(text), "tokens", n)
			return nil
		},
	}
}
