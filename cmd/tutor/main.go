package main

import (
	"os"

	"github.com/dhamidi/tutor/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("tutor")

// globals holds the persistent flags and the configuration they resolve to.
type globals struct {
	configPath string
	verbose    int
	logFile    string

	config *config.Config
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:           "tutor",
		Short:         "Parse, check and serve tutorial lesson documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "configuration file (.yaml, .yml or .toml)")
	flags.CountVarP(&g.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&g.logFile, "log", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newRebuildCmd())
	rootCmd.AddCommand(newCommentsCmd())
	rootCmd.AddCommand(newWatchCmd(g))
	rootCmd.AddCommand(newLSPCmd(g))

	return rootCmd
}

// load reads the configuration, lets flags override it and configures
// logging.
func (g *globals) load(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Log.Verbosity = g.verbose
	}
	if cmd.Flags().Changed("log") {
		cfg.Log.File = g.logFile
	}
	g.config = cfg

	var path *string
	if cfg.Log.File != "" {
		path = &cfg.Log.File
	}
	commonlog.Configure(cfg.Log.Verbosity, path)
	log.Debugf("configuration loaded from %q", g.configPath)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
