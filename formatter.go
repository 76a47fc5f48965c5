package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jvitoroc/fieldtext/fieldtext"
	"github.com/tliron/commonlog"
)

type formatter struct {
	log commonlog.Logger
}

// format rewrites every query of batch, one per line, in canonical form.
// Blank lines and lines starting with '#' are copied unchanged.
func (f *formatter) format(batch string) (string, bool, error) {
	lines := strings.Split(batch, "\n")
	out := make([]string, len(lines))
	changed := false

	for i, line := range lines {
		out[i] = line

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		c, err := canonical(trimmed)
		if err != nil {
			return "", false, fmt.Errorf("line %d: %w", i+1, err)
		}

		if c != line {
			f.log.Debugf("line %d: %q -> %q", i+1, line, c)
			out[i] = c
			changed = true
		}
	}

	return strings.Join(out, "\n"), changed, nil
}

// canonical parses a single query and prints it back, making sure the
// printed text reads back into the same tree.
func canonical(query string) (string, error) {
	n, err := fieldtext.Parse(query)
	if err != nil {
		return "", err
	}

	text, ok := fieldtext.Serialize(n)
	if !ok {
		return "", errors.New("query has no text form")
	}

	again, err := fieldtext.Parse(text)
	if err != nil {
		return "", fmt.Errorf("canonical form '%s' does not parse: %w", text, err)
	}

	if !fieldtext.Equal(n, again) {
		return "", fmt.Errorf("canonical form '%s' changes the meaning of the query", text)
	}

	return text, nil
}
