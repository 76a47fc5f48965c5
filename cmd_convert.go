package main

import (
	"fmt"
	"io"

	"github.com/jvitoroc/fieldtext/fieldtext"
	"github.com/jvitoroc/fieldtext/grammar"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Print a JSON raw parse tree as field text",
		Long: `Read a raw parse tree in the JSON shape printed by "parse" and print it
as canonical field text.

If no file is provided, reads the tree from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				source []byte
				err    error
			)

			if len(args) == 0 {
				source, err = io.ReadAll(a.stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = readFile(a.fs, args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			raw, err := grammar.UnmarshalRaw(source)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.stdout, fieldtext.Convert(raw).String())
			return err
		},
	}

	return cmd
}
