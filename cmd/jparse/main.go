// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jparse tokenizes or parses a document and prints the result.
//
// Usage:
//
//	jparse tokens [FILE]
//	jparse parse [-o json|yaml] [FILE]
//
// If FILE is omitted or is "-", input is read from stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
)

func main() {
	root, logger := newRootCommand()
	if err := root.Execute(); err != nil {
		level.Error(*logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}

// settings are the flags shared by all subcommands.
type settings struct {
	MaxDepth int
	Comments bool
	Lenient  bool
	Verbose  bool

	logger log.Logger
}

func newRootCommand() (*cobra.Command, *log.Logger) {
	s := new(settings)
	cmd := &cobra.Command{
		Use:           "jparse",
		Short:         "Tokenize and parse structured data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			s.logger = newLogger(cmd.ErrOrStderr(), s.Verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error { return cmd.Usage() },
	}
	cmd.CompletionOptions.HiddenDefaultCmd = true
	s.logger = newLogger(os.Stderr, false)

	flags := cmd.PersistentFlags()
	flags.IntVar(&s.MaxDepth, "max-depth", 0, "Maximum nesting depth (0 for the default)")
	flags.BoolVar(&s.Comments, "comments", false, "Accept comments and trailing commas")
	flags.BoolVar(&s.Lenient, "lenient", false, "Match true, false, and null without a following delimiter")
	flags.BoolVarP(&s.Verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newTokensCommand(s), newParseCommand(s))
	return cmd, &s.logger
}

func newLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	allow := level.AllowInfo()
	if verbose {
		allow = level.AllowDebug()
	}
	return level.NewFilter(logger, allow)
}

// readInput returns the name and contents of the input selected by args.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return "stdin", string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return args[0], string(data), nil
}
