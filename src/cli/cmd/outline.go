package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sofmeright/nbforge/src/lesson"
	"github.com/sofmeright/nbforge/src/notebook"
	"github.com/sofmeright/nbforge/src/output"
)

var outlineCmd = &cobra.Command{
	Use:   "outline [notebook.ipynb]",
	Short: "Print the heading outline of a notebook",
	Long: `Print the markdown headings of a notebook file, indented by level.
Without an argument the built-in blood-pressure lesson is outlined.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	start := time.Now()

	name := "built-in lesson"
	doc := lesson.BloodPressure()
	if len(args) == 1 {
		var err error
		name = args[0]
		doc, err = notebook.Read(name)
		if err != nil {
			return err
		}
	}

	color := output.UseColor()
	sec := output.NewSection(cmd.OutOrStdout(), "Outline", time.Since(start), color)
	sec.KV("source", name)
	sec.Separator()
	output.SectionOutline(sec, notebook.Outline(doc), color)
	sec.Close()
	return nil
}
