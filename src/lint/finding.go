package lint

import (
	"fmt"
	"sort"
)

// Severity indicates how serious a finding is.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Finding represents a single lint result.
type Finding struct {
	Block    int // index of the block in the document
	Line     int // 1-based line within the block; 0 for whole-block findings
	Module   string
	Severity Severity
	Message  string
}

// Counts tallies findings by severity.
type Counts struct {
	Critical int
	Warning  int
	Info     int
}

// Total returns the number of findings counted.
func (c Counts) Total() int { return c.Critical + c.Warning + c.Info }

// Count tallies findings by severity.
func Count(findings []Finding) Counts {
	var c Counts
	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityWarning:
			c.Warning++
		default:
			c.Info++
		}
	}
	return c
}

// sortFindings orders by block, line, module, message.
func sortFindings(ff []Finding) {
	sort.Slice(ff, func(i, j int) bool {
		a, b := ff[i], ff[j]
		if a.Block != b.Block {
			return a.Block < b.Block
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Module != b.Module {
			return a.Module < b.Module
		}
		return a.Message < b.Message
	})
}
