// Command s3call performs operations defined in a configuration file from the command line, driving them the same
// way an ESB host would.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/greenvulcano/gvesb-s3/config"
)

var version = "dev"

const defaultConfigPath = "~/.s3call.yaml"

type cli struct {
	cfgFile  string
	logLevel string

	cfg    *config.File
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:     "s3call",
		Version: version,
		Short:   "Run configured s3-call operations",
		Long: `s3call runs operations defined in a configuration file against S3-compatible storage.

A .env file in the working directory is loaded before anything else, so credentials
referenced as env{{NAME}} in the configuration can live there.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}
	root.PersistentFlags().StringVarP(&c.cfgFile, "config", "c", defaultConfigPath, "config file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level, overrides the config file (env: GVESB_LOG_LEVEL)")

	root.AddCommand(c.newPerformCmd())
	root.AddCommand(c.newOperationsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads .env, the config file and the logger before any subcommand runs.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	path, err := homedir.Expand(c.cfgFile)
	if err != nil {
		return fmt.Errorf("config path: %w", err)
	}
	// a missing default file means no operations; a missing explicit one is an error
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	c.cfg, err = config.Load(path)
	if err != nil {
		return err
	}

	level := c.cfg.Log.Level
	if c.logLevel != "" {
		level = c.logLevel
	}
	c.logger, err = newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	log.Logger = c.logger
	return nil
}
