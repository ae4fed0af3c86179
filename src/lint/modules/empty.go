package modules

import (
	"context"
	"strings"

	"github.com/sofmeright/nbforge/src/lint"
)

func init() {
	lint.Register("empty", func() lint.Module { return &emptyModule{} })
}

type emptyModule struct{}

func (m *emptyModule) Name() string        { return "empty" }
func (m *emptyModule) DefaultEnabled() bool { return true }

func (m *emptyModule) Check(ctx context.Context, b lint.BlockInfo) ([]lint.Finding, error) {
	if strings.TrimSpace(b.Block.Text()) != "" {
		return nil, nil
	}
	return []lint.Finding{{
		Block:    b.Index,
		Module:   m.Name(),
		Severity: lint.SeverityCritical,
		Message:  b.Block.Kind().String() + " block is empty",
	}}, nil
}
