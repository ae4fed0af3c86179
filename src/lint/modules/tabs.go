package modules

import (
	"context"
	"strings"

	"github.com/sofmeright/nbforge/src/lint"
	"github.com/sofmeright/nbforge/src/notebook"
)

func init() {
	lint.Register("tabs", func() lint.Module { return &tabsModule{} })
}

type tabsModule struct{}

func (m *tabsModule) Name() string        { return "tabs" }
func (m *tabsModule) DefaultEnabled() bool { return true }

// Check flags tab indentation in snippets, where mixing tabs and spaces
// breaks Python's block structure.
func (m *tabsModule) Check(ctx context.Context, b lint.BlockInfo) ([]lint.Finding, error) {
	if b.Block.Kind() != notebook.Snippet {
		return nil, nil
	}

	var findings []lint.Finding
	for n, line := range strings.Split(b.Block.Text(), "\n") {
		// Only flag leading tabs (indentation), not tabs inside content
		if strings.HasPrefix(line, "\t") {
			findings = append(findings, lint.Finding{
				Block:    b.Index,
				Line:     n + 1,
				Module:   m.Name(),
				Severity: lint.SeverityWarning,
				Message:  "tab indentation (spaces expected)",
			})
		}
	}
	return findings, nil
}
