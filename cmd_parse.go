package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jvitoroc/fieldtext/grammar"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [query]",
		Short: "Print the raw parse tree of a query as JSON",
		Long: `Print the raw parse tree of a query as JSON, in the object shape used by
the JavaScript field text grammar ({boolean,left,right}, {fieldtext},
{operator,fields,values}, plus "negative").

If no query is provided, reads it from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := a.query(args)
			if err != nil {
				return err
			}

			raw, err := grammar.Parse(query)
			if err != nil {
				return err
			}

			blob, err := raw.MarshalJSON()
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			_, err = fmt.Fprintf(a.stdout, "%s\n", blob)
			return err
		},
	}

	return cmd
}

// query joins the arguments into a query, or reads one from stdin.
func (a *app) query(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	source, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimSpace(string(source)), nil
}
