// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/creachadair/jparse/ast"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newParseCommand(s *settings) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Parse a file and print the resulting value",
		Long: `Parse a file and print the resulting value as JSON or YAML.

Object keys are printed in sorted order, and integers and floating-point
numbers with integral values print the same.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			v, err := ast.ParseWithOptions(text, &ast.ParseOptions{
				MaxDepth:        s.MaxDepth,
				AllowComments:   s.Comments,
				LenientKeywords: s.Lenient,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			level.Debug(s.logger).Log("msg", "parsed input", "file", name, "bytes", len(text))

			var data []byte
			switch output {
			case "json":
				data, err = json.MarshalIndent(v.Interface(), "", "  ")
			case "yaml":
				data, err = yaml.Marshal(v.Interface())
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format (json or yaml)")
	return cmd
}
