package modules

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sofmeright/nbforge/src/lint"
)

func init() {
	lint.Register("unicode", func() lint.Module { return &unicodeModule{} })
}

// unicodeModule flags invisible and direction-changing characters in any
// block. Ordinary non-ASCII letters (π, Δ, η) are fine.
type unicodeModule struct{}

func (m *unicodeModule) Name() string        { return "unicode" }
func (m *unicodeModule) DefaultEnabled() bool { return true }

type runeClass struct {
	msg      string
	critical bool
}

var suspiciousRunes = map[rune]runeClass{
	'\u202A': {"bidi override: left-to-right embedding", true},
	'\u202B': {"bidi override: right-to-left embedding", true},
	'\u202C': {"bidi override: pop directional formatting", true},
	'\u202D': {"bidi override: left-to-right override", true},
	'\u202E': {"bidi override: right-to-left override", true},
	'\u2066': {"bidi override: left-to-right isolate", true},
	'\u2067': {"bidi override: right-to-left isolate", true},
	'\u2068': {"bidi override: first strong isolate", true},
	'\u2069': {"bidi override: pop directional isolate", true},
	'\u200B': {"zero-width space", true},
	'\u200C': {"zero-width non-joiner", true},
	'\u200D': {"zero-width joiner", true},
	'\uFEFF': {"zero-width no-break space (unexpected BOM)", true},
	'\u00AD': {"soft hyphen (invisible)", false},
	'\u034F': {"combining grapheme joiner", false},
	'\u2060': {"word joiner (invisible)", false},
	'\u180E': {"mongolian vowel separator (invisible whitespace)", false},
	'\u00A0': {"non-breaking space", false},
	'\u205F': {"medium mathematical space", false},
	'\u3000': {"ideographic space", false},
}

func classifyRune(r rune) (runeClass, bool) {
	if c, ok := suspiciousRunes[r]; ok {
		return c, true
	}
	switch {
	case r >= '\u2061' && r <= '\u2064':
		return runeClass{"invisible math operator", false}, true
	case r >= '\u2000' && r <= '\u200A':
		return runeClass{"unusual whitespace character", false}, true
	case r >= 0xE0001 && r <= 0xE007F:
		return runeClass{"tag character (invisible)", true}, true
	case r < 0x80 && r != '\t' && r != '\n' && r != '\r' && unicode.IsControl(r):
		return runeClass{"ASCII control character", false}, true
	}
	return runeClass{}, false
}

func (m *unicodeModule) Check(ctx context.Context, b lint.BlockInfo) ([]lint.Finding, error) {
	var findings []lint.Finding

	for n, line := range strings.Split(b.Block.Text(), "\n") {
		if !utf8.ValidString(line) {
			findings = append(findings, lint.Finding{
				Block:    b.Index,
				Line:     n + 1,
				Module:   m.Name(),
				Severity: lint.SeverityWarning,
				Message:  "invalid UTF-8 encoding",
			})
			continue
		}
		for _, r := range line {
			c, ok := classifyRune(r)
			if !ok {
				continue
			}
			sev := lint.SeverityWarning
			if c.critical {
				sev = lint.SeverityCritical
			}
			findings = append(findings, lint.Finding{
				Block:    b.Index,
				Line:     n + 1,
				Module:   m.Name(),
				Severity: sev,
				Message:  fmt.Sprintf("%s (U+%04X)", c.msg, r),
			})
		}
	}

	return findings, nil
}
