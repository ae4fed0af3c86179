package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/sofmeright/nbforge/src/lint"
	"github.com/sofmeright/nbforge/src/notebook"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

func paint(text, code string, color bool) string {
	if !color {
		return text
	}
	return code + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// IsCI reports whether we run inside a CI job.
func IsCI() bool {
	return os.Getenv("CI") == "true"
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}

// severityTag returns a short severity label, optionally colored.
func severityTag(s lint.Severity, color bool) string {
	switch s {
	case lint.SeverityCritical:
		return paint("CRIT", colorRed, color)
	case lint.SeverityWarning:
		return paint("WARN", colorYellow, color)
	case lint.SeverityInfo:
		return paint("INFO", colorGray, color)
	default:
		return s.String()
	}
}

// FindingsSummaryLine returns a one-line findings summary, optionally colored.
func FindingsSummaryLine(c lint.Counts, blocks int, color bool) string {
	var parts []string
	if c.Critical > 0 {
		parts = append(parts, paint(fmt.Sprintf("%d critical", c.Critical), colorRed, color))
	}
	if c.Warning > 0 {
		parts = append(parts, paint(fmt.Sprintf("%d warning", c.Warning), colorYellow, color))
	}
	if c.Info > 0 {
		parts = append(parts, fmt.Sprintf("%d info", c.Info))
	}

	summary := "no findings"
	if len(parts) > 0 {
		summary = strings.Join(parts, ", ")
	}

	total := paint(fmt.Sprintf("%d", c.Total()), colorBold, color)
	return fmt.Sprintf("%s findings in %d blocks: %s", total, blocks, summary)
}

// SectionFindings renders findings grouped by block inside a section.
// Findings are expected pre-sorted (lint.Engine.Run sorts them).
func SectionFindings(sec *Section, doc notebook.Document, findings []lint.Finding, color bool) {
	if len(findings) == 0 {
		return
	}

	sec.Row("")
	current := -1
	for _, f := range findings {
		if f.Block != current {
			if current >= 0 {
				sec.Row("")
			}
			current = f.Block
			label := fmt.Sprintf("block %d", f.Block)
			if f.Block >= 0 && f.Block < doc.Len() {
				label += " (" + doc.Block(f.Block).Kind().String() + ")"
			}
			sec.Row("%s", paint(label, colorBold, color))
		}

		loc := "-"
		if f.Line > 0 {
			loc = fmt.Sprintf("%d", f.Line)
		}
		sec.Row("  %-6s %-4s  %-14s %s", loc, severityTag(f.Severity, color), paint(f.Module, colorCyan, color), f.Message)
	}
	sec.Row("")
}

// SectionOutline renders a heading outline, indented by level.
func SectionOutline(sec *Section, headings []notebook.Heading, color bool) {
	if len(headings) == 0 {
		sec.Row("%s", paint("no headings", colorGray, color))
		return
	}
	for _, h := range headings {
		indent := strings.Repeat("  ", max(h.Level-1, 0))
		sec.Row("%s %s%s", paint(fmt.Sprintf("[%d]", h.Block), colorGray, color), indent, h.Text)
	}
}

// RowStatus writes a row with label, detail, and a status icon.
func RowStatus(sec *Section, label, detail, status string, color bool) {
	icon := StatusIcon(status, color)
	if detail != "" {
		sec.Row("%s — %s %s", label, detail, icon)
	} else {
		sec.Row("%s %s", label, icon)
	}
}
