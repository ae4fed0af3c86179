package modules

import (
	"context"
	"fmt"
	"strings"

	"github.com/sofmeright/nbforge/src/lint"
	"github.com/sofmeright/nbforge/src/notebook"
)

func init() {
	lint.Register("delimiters", func() lint.Module { return &delimitersModule{} })
}

// delimitersModule checks that brackets in Python snippets balance and that
// string literals terminate. String contents and # comments are skipped.
type delimitersModule struct{}

func (m *delimitersModule) Name() string        { return "delimiters" }
func (m *delimitersModule) DefaultEnabled() bool { return true }

var closerFor = map[byte]byte{'(': ')', '[': ']', '{': '}'}

type opener struct {
	ch   byte
	line int
}

// DelimiterProblem is one structural defect found by ScanDelimiters.
type DelimiterProblem struct {
	Line    int
	Message string
}

func (m *delimitersModule) Check(ctx context.Context, b lint.BlockInfo) ([]lint.Finding, error) {
	if b.Block.Kind() != notebook.Snippet {
		return nil, nil
	}

	var findings []lint.Finding
	for _, p := range ScanDelimiters(b.Block.Text()) {
		findings = append(findings, lint.Finding{
			Block:    b.Index,
			Line:     p.Line,
			Module:   m.Name(),
			Severity: lint.SeverityCritical,
			Message:  p.Message,
		})
	}
	return findings, nil
}

// ScanDelimiters walks Python source and reports unbalanced brackets and
// unterminated string literals. It is a structural check, not a parser.
func ScanDelimiters(src string) []DelimiterProblem {
	var (
		problems []DelimiterProblem
		stack    []opener
		line     = 1
	)

scan:
	for i := 0; i < len(src); {
		c := src[i]
		switch c {
		case '\n':
			line++
			i++

		case '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}

		case '\'', '"':
			start := line
			triple := strings.Repeat(string(c), 3)
			if strings.HasPrefix(src[i:], triple) {
				end := strings.Index(src[i+3:], triple)
				if end < 0 {
					problems = append(problems, DelimiterProblem{start, "unterminated triple-quoted string"})
					break scan
				}
				line += strings.Count(src[i+3:i+3+end], "\n")
				i += 3 + end + 3
				continue
			}

			j := i + 1
			closed := false
			for j < len(src) && src[j] != '\n' {
				if src[j] == '\\' {
					if j+1 < len(src) && src[j+1] == '\n' {
						line++
					}
					j += 2
					continue
				}
				if src[j] == c {
					closed = true
					break
				}
				j++
			}
			if !closed {
				problems = append(problems, DelimiterProblem{start, "unterminated string literal"})
				i = j
				continue
			}
			i = j + 1

		case '(', '[', '{':
			stack = append(stack, opener{ch: c, line: line})
			i++

		case ')', ']', '}':
			if len(stack) == 0 || closerFor[stack[len(stack)-1].ch] != c {
				problems = append(problems, DelimiterProblem{line, fmt.Sprintf("unmatched %q", c)})
			} else {
				stack = stack[:len(stack)-1]
			}
			i++

		default:
			i++
		}
	}

	for _, o := range stack {
		problems = append(problems, DelimiterProblem{o.line, fmt.Sprintf("unclosed %q", o.ch)})
	}
	return problems
}
