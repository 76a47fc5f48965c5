package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jvitoroc/fieldtext/fieldtext"
	"github.com/jvitoroc/fieldtext/grammar"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".fieldtext_history"
	promptMain  = "fieldtext> "
	replHelp    = `Type a query to see it in canonical form.
  :raw <query>   print the raw parse tree as JSON
  :and <query>   AND the query onto the current tree
  :or <query>    OR the query onto the current tree
  :not           negate the current tree
  :clear         forget the current tree
  :quit          exit`
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Canonicalise and combine queries interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.repl()
		},
	}
}

func (a *app) repl() error {
	fmt.Fprintln(a.stdout, replHelp)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath, ok := a.historyPath(); ok {
		if f, err := a.fs.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}

		defer func() {
			if f, err := a.fs.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	s := &replSession{}
	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(a.stdout)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" {
			return nil
		}
		ln.AppendHistory(line)

		out, err := s.eval(line)
		if err != nil {
			fmt.Fprintln(a.stdout, "error:", err)
			continue
		}
		fmt.Fprintln(a.stdout, out)
	}
}

// historyPath is the REPL history file in the home directory. There is no
// history when the home directory is unknown.
func (a *app) historyPath() (string, bool) {
	home, err := a.homeDir()
	if err != nil || home == "" {
		a.log.Debugf("repl history disabled: %v", err)
		return "", false
	}

	return filepath.Join(home, historyFile), true
}

// replSession keeps the tree built up with :and, :or and :not.
type replSession struct {
	tree fieldtext.Node
}

func (s *replSession) eval(line string) (string, error) {
	command, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch command {
	case ":raw":
		raw, err := grammar.Parse(rest)
		if err != nil {
			return "", err
		}
		blob, err := raw.MarshalJSON()
		return string(blob), err
	case ":and", ":or":
		n, err := fieldtext.Parse(rest)
		if err != nil {
			return "", err
		}
		if command == ":and" {
			s.tree = fieldtext.And(s.tree, n)
		} else {
			s.tree = fieldtext.Or(s.tree, n)
		}
	case ":not":
		s.tree = fieldtext.Not(s.tree)
	case ":clear":
		s.tree = fieldtext.Null
	default:
		if strings.HasPrefix(command, ":") {
			return "", fmt.Errorf("unknown command %s", command)
		}
		return canonical(line)
	}

	if text, ok := fieldtext.Serialize(s.tree); ok {
		return text, nil
	}

	return "(empty)", nil
}
