package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofmeright/nbforge/src/lint"
	"github.com/sofmeright/nbforge/src/notebook"
	"github.com/sofmeright/nbforge/src/output"
)

var checkCmd = &cobra.Command{
	Use:   "check <notebook.ipynb>",
	Short: "Validate and lint a notebook file",
	Long: `Validate a notebook against the nbformat v4 schema, decode its cells
into blocks and run the lint checks over them.

Exits non-zero when the notebook is invalid or has critical findings.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()
	path := args[0]
	color := output.UseColor()
	w := cmd.OutOrStdout()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", notebook.ErrIO, path, err)
	}

	if err := notebook.Validate(data); err != nil {
		sec := output.NewSection(w, "Check", time.Since(start), color)
		sec.KV("file", path)
		output.RowStatus(sec, "schema", err.Error(), "failed", color)
		sec.Close()
		return fmt.Errorf("checking %s: %w", path, err)
	}

	doc, err := notebook.Decode(data)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	appLog.Debug("decoded notebook", "path", path, "blocks", doc.Len())

	engine, err := lint.NewEngine(cfg.Lint.Checks, cfg.Lint.Skip)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}
	findings, err := engine.Run(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("lint: %w", err)
	}
	counts := lint.Count(findings)

	status := "success"
	if counts.Critical > 0 {
		status = "failed"
	}

	sec := output.NewSection(w, "Check", time.Since(start), color)
	sec.KV("file", path)
	sec.KV("blocks", fmt.Sprintf("%d (%s)", doc.Len(), kindList(doc)))
	output.RowStatus(sec, "schema", "nbformat "+notebook.SupportedFormats, "success", color)
	output.RowStatus(sec, "lint", fmt.Sprintf("%d modules", len(engine.Modules)), status, color)
	output.SectionFindings(sec, doc, findings, color)
	sec.Separator()
	sec.Row("%s", output.FindingsSummaryLine(counts, doc.Len(), color))
	sec.Close()

	if counts.Critical > 0 {
		return fmt.Errorf("%d critical findings in %s", counts.Critical, path)
	}
	return nil
}
