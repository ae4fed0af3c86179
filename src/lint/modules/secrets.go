package modules

import (
	"context"
	"sync"

	"github.com/zricethezav/gitleaks/v8/detect"

	"github.com/sofmeright/nbforge/src/lint"
	"github.com/sofmeright/nbforge/src/notebook"
)

func init() {
	lint.Register("secrets", func() lint.Module { return &secretsModule{} })
}

// The default rule set is compiled once per process and shared by every
// module instance.
var defaultDetector = sync.OnceValues(detect.NewDetectorDefaultConfig)

// secretsModule scans snippets for credentials with the gitleaks rule set.
// One instance serves all blocks concurrently, so detector calls are
// serialized.
type secretsModule struct {
	mu sync.Mutex
}

func (m *secretsModule) Name() string        { return "secrets" }
func (m *secretsModule) DefaultEnabled() bool { return true }

func (m *secretsModule) Check(ctx context.Context, b lint.BlockInfo) ([]lint.Finding, error) {
	if b.Block.Kind() != notebook.Snippet {
		return nil, nil
	}

	detector, err := defaultDetector()
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	hits := detector.DetectString(b.Block.Text())
	m.mu.Unlock()

	findings := make([]lint.Finding, 0, len(hits))
	for _, h := range hits {
		findings = append(findings, lint.Finding{
			Block:    b.Index,
			Line:     h.StartLine + 1, // gitleaks is 0-indexed
			Module:   m.Name(),
			Severity: lint.SeverityCritical,
			Message:  h.Description + " (" + h.RuleID + ")",
		})
	}
	return findings, nil
}
