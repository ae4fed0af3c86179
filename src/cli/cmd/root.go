package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sofmeright/nbforge/src/config"
	"github.com/sofmeright/nbforge/src/logger"
	"github.com/sofmeright/nbforge/src/notebook"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
	appLog  = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "nbforge",
	Short: "Teaching notebook generator",
	Long: `nbforge assembles the blood-pressure physiology exercise (markdown
explanations, plotting code cells and a Q&A section) and writes it as a
Jupyter notebook.

Run without a subcommand to generate the notebook with the configured defaults.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appLog, err = logger.New(cfg.Log.Mode, verbose)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLog != nil {
			appLog.Sync()
		}
	},
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file, .yml or .toml (default: .nbforge.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output notebook path (default: output.path from config)")
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

// kindList renders block kinds as "narrative, snippet, ...".
func kindList(doc notebook.Document) string {
	kinds := doc.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
