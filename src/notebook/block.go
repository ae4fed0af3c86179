// Package notebook assembles ordered content blocks into a Document and
// serializes it as a Jupyter notebook (nbformat v4).
//
// A Block is either narrative (markdown) or a snippet (source code for an
// external kernel). Block payloads are opaque: nothing here parses, runs or
// rewrites snippet text. The only data the package reasons about is block
// order and kind.
package notebook

import "fmt"

// Kind discriminates the two block variants.
type Kind int

const (
	Narrative Kind = iota
	Snippet
)

func (k Kind) String() string {
	switch k {
	case Narrative:
		return "narrative"
	case Snippet:
		return "snippet"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// cellType maps a Kind to its nbformat cell_type.
func (k Kind) cellType() string {
	if k == Snippet {
		return "code"
	}
	return "markdown"
}

// Block is a single unit of document content. Blocks are immutable.
type Block struct {
	kind Kind
	text string
}

// NewNarrative wraps formatted markdown text. The text is stored as-is.
func NewNarrative(text string) Block {
	return Block{kind: Narrative, text: text}
}

// NewSnippet wraps literal source text. No syntax validation is performed.
func NewSnippet(source string) Block {
	return Block{kind: Snippet, text: source}
}

func (b Block) Kind() Kind   { return b.kind }
func (b Block) Text() string { return b.text }
