package modules

import (
	"context"
	"strings"

	"github.com/sofmeright/nbforge/src/lint"
	"github.com/sofmeright/nbforge/src/notebook"
)

func init() {
	lint.Register("trailing-space", func() lint.Module { return &trailingModule{} })
}

// trailingModule only inspects snippets: in markdown two trailing spaces
// are a hard line break.
type trailingModule struct{}

func (m *trailingModule) Name() string        { return "trailing-space" }
func (m *trailingModule) DefaultEnabled() bool { return true }

func (m *trailingModule) Check(ctx context.Context, b lint.BlockInfo) ([]lint.Finding, error) {
	if b.Block.Kind() != notebook.Snippet {
		return nil, nil
	}

	var findings []lint.Finding
	for n, line := range strings.Split(b.Block.Text(), "\n") {
		if line != strings.TrimRight(line, " \t") {
			findings = append(findings, lint.Finding{
				Block:    b.Index,
				Line:     n + 1,
				Module:   m.Name(),
				Severity: lint.SeverityInfo,
				Message:  "trailing whitespace",
			})
		}
	}
	return findings, nil
}
