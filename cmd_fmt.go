package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newFmtCmd(a *app) *cobra.Command {
	var (
		fmtWrite bool
		fmtCheck bool
	)

	cmd := &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Print field text queries in canonical form",
		Long: `Print field text queries in canonical form, one query per line.

Canonical form uses upper case operators, single spaces, XOR for EOR, and
keeps the brackets written in the source. Blank lines and lines starting
with '#' are copied unchanged.

If no file is provided, reads queries from stdin.

Use -w to overwrite files in place, or --check to list the files that are
not in canonical form and fail if there are any.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fmtWrite && fmtCheck {
				return errors.New("-w and --check are mutually exclusive")
			}

			if len(args) == 0 {
				if fmtWrite {
					return errors.New("-w requires a file argument")
				}

				source, err := io.ReadAll(a.stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}

				output, changed, err := a.formatter().format(string(source))
				if err != nil {
					return fmt.Errorf("format: %w", err)
				}

				if fmtCheck {
					if changed {
						return errors.New("stdin is not in canonical form")
					}
					return nil
				}

				_, err = io.WriteString(a.stdout, output)
				return err
			}

			unformatted := 0
			for _, name := range args {
				source, err := readFile(a.fs, name)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}

				output, changed, err := a.formatter().format(string(source))
				if err != nil {
					return fmt.Errorf("format %s: %w", name, err)
				}

				switch {
				case fmtCheck:
					if changed {
						unformatted++
						fmt.Fprintln(a.stdout, name)
					}
				case fmtWrite:
					if !changed {
						continue
					}
					if err := writeFile(a.fs, name, []byte(output)); err != nil {
						return err
					}
					a.log.Infof("rewrote %s", name)
				default:
					if _, err := io.WriteString(a.stdout, output); err != nil {
						return err
					}
				}
			}

			if unformatted > 0 {
				return fmt.Errorf("%d file(s) not in canonical form", unformatted)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "overwrite files in place")
	cmd.Flags().BoolVar(&fmtCheck, "check", false, "fail if any input is not in canonical form")

	return cmd
}
