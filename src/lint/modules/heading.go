package modules

import (
	"context"

	"github.com/yuin/goldmark"

	"github.com/sofmeright/nbforge/src/lint"
	"github.com/sofmeright/nbforge/src/notebook"
)

func init() {
	lint.Register("heading", func() lint.Module { return &headingModule{md: goldmark.New()} })
}

// headingModule requires the first narrative block to open with a title.
type headingModule struct {
	md goldmark.Markdown
}

func (m *headingModule) Name() string        { return "heading" }
func (m *headingModule) DefaultEnabled() bool { return true }

func (m *headingModule) Check(ctx context.Context, b lint.BlockInfo) ([]lint.Finding, error) {
	if b.Block.Kind() != notebook.Narrative || !b.FirstOfKind {
		return nil, nil
	}

	for _, h := range notebook.Headings(m.md, b.Block.Text()) {
		if h.Level == 1 {
			return nil, nil
		}
	}
	return []lint.Finding{{
		Block:    b.Index,
		Module:   m.Name(),
		Severity: lint.SeverityWarning,
		Message:  "first narrative block has no level-1 heading",
	}}, nil
}
