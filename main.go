package main

import (
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

type app struct {
	fs      billy.Filesystem
	stdin   io.Reader
	stdout  io.Writer
	log     commonlog.Logger
	homeDir func() (string, error)
}

func newApp() *app {
	return &app{
		fs:      newDiskFs(),
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		log:     commonlog.GetLogger("fieldtext"),
		homeDir: os.UserHomeDir,
	}
}

func (a *app) formatter() *formatter {
	return &formatter{log: a.log}
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath string
		verbose    int
	)

	rootCmd := &cobra.Command{
		Use:          "fieldtext",
		Short:        "Read, combine and canonicalise IDOL field text queries",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.fs, configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("verbose") {
				cfg.Verbosity = verbose
			}

			var logPath *string
			if cfg.LogFile != "" {
				logPath = &cfg.LogFile
			}
			commonlog.Configure(cfg.Verbosity, logPath)

			a.log.Debugf("running %s with verbosity %d", cmd.Name(), cfg.Verbosity)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "log more (repeatable)")

	rootCmd.AddCommand(newFmtCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newGrammarCmd(a))
	rootCmd.AddCommand(newReplCmd(a))

	return rootCmd
}
