package main

import (
	"fmt"
	"io"

	"github.com/jvitoroc/fieldtext/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF of the field text language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Grammar()
			if err != nil {
				return err
			}
			a.log.Debugf("grammar has %d productions", len(g))

			_, err = io.WriteString(a.stdout, grammar.GrammarSource())
			if err != nil {
				return fmt.Errorf("write: %w", err)
			}

			return nil
		},
	}
}
