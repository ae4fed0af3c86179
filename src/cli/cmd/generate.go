package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/nbforge/src/config"
	"github.com/sofmeright/nbforge/src/lesson"
	"github.com/sofmeright/nbforge/src/lint"
	_ "github.com/sofmeright/nbforge/src/lint/modules"
	"github.com/sofmeright/nbforge/src/notebook"
)

const confirmationMessage = "Notebook with embedded answers has been created successfully."

var genOutput string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write the blood-pressure exercise notebook",
	Long: `Assemble the blood-pressure exercise and write it as an nbformat 4.5
notebook. An existing file at the destination is replaced atomically.

Blocks are linted before writing; critical findings abort the run unless
lint.enabled is false in the config.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output notebook path (default: output.path from config)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	path := genOutput
	if path == "" {
		path = cfg.Output.Path
	} else if err := config.ValidateOutputPath(path); err != nil {
		return err
	}
	mode, err := cfg.Output.FileMode()
	if err != nil {
		return err
	}

	doc := lesson.BloodPressure()
	appLog.Debug("assembled document", "blocks", doc.Len(), "kinds", kindList(doc))

	if cfg.Lint.Enabled {
		if err := lintDocument(cmd.Context(), doc, cfg.Lint); err != nil {
			return err
		}
	}

	opts := notebook.WriteOptions{
		Encode: notebook.EncodeOptions{Kernel: kernelFromConfig(cfg.Kernel)},
		Mode:   mode,
	}
	if err := notebook.Write(doc, path, opts); err != nil {
		return fmt.Errorf("writing notebook: %w", err)
	}
	appLog.Debug("notebook written", "path", path, "mode", fmt.Sprintf("%#o", mode))

	fmt.Fprintln(cmd.OutOrStdout(), confirmationMessage)
	return nil
}

// lintDocument logs every finding and fails on critical ones.
func lintDocument(ctx context.Context, doc notebook.Document, lc config.LintConfig) error {
	engine, err := lint.NewEngine(lc.Checks, lc.Skip)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}

	findings, err := engine.Run(ctx, doc)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}

	for _, f := range findings {
		kv := []interface{}{"block", f.Block, "line", f.Line, "module", f.Module, "severity", f.Severity.String()}
		if f.Severity == lint.SeverityInfo {
			appLog.Debug(f.Message, kv...)
		} else {
			appLog.Warn(f.Message, kv...)
		}
	}

	if c := lint.Count(findings); c.Critical > 0 {
		return fmt.Errorf("lint: %d critical findings", c.Critical)
	}
	appLog.Debug("lint passed", "modules", engine.ModuleNames(), "findings", len(findings))
	return nil
}

func kernelFromConfig(k config.KernelConfig) notebook.Kernel {
	return notebook.Kernel{
		Name:        k.Name,
		DisplayName: k.DisplayName,
		Language:    k.Language,
	}
}
