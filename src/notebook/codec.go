package notebook

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Format version written by Encode.
const (
	FormatMajor = 4
	FormatMinor = 5
)

// Kernel describes the execution environment recorded in notebook metadata.
type Kernel struct {
	Name        string
	DisplayName string
	Language    string
}

// DefaultKernel returns the stock Python 3 kernel.
func DefaultKernel() Kernel {
	return Kernel{Name: "python3", DisplayName: "Python 3", Language: "python"}
}

// EncodeOptions controls notebook metadata. The zero value uses DefaultKernel.
type EncodeOptions struct {
	Kernel Kernel
}

// Struct fields are declared in JSON key order so the output has sorted keys,
// matching the reference nbformat writer.

type fileOut struct {
	Cells         []any       `json:"cells"`
	Metadata      metadataOut `json:"metadata"`
	NBFormat      int         `json:"nbformat"`
	NBFormatMinor int         `json:"nbformat_minor"`
}

type metadataOut struct {
	Kernelspec   kernelspecOut   `json:"kernelspec"`
	LanguageInfo languageInfoOut `json:"language_info"`
}

type kernelspecOut struct {
	DisplayName string `json:"display_name"`
	Language    string `json:"language"`
	Name        string `json:"name"`
}

type languageInfoOut struct {
	Name string `json:"name"`
}

type markdownCellOut struct {
	CellType string    `json:"cell_type"`
	ID       string    `json:"id"`
	Metadata struct{}  `json:"metadata"`
	Source   multiline `json:"source"`
}

type codeCellOut struct {
	CellType       string            `json:"cell_type"`
	ExecutionCount *int              `json:"execution_count"`
	ID             string            `json:"id"`
	Metadata       struct{}          `json:"metadata"`
	Outputs        []json.RawMessage `json:"outputs"`
	Source         multiline         `json:"source"`
}

type fileIn struct {
	Cells []cellIn `json:"cells"`
}

type cellIn struct {
	CellType string    `json:"cell_type"`
	Source   multiline `json:"source"`
}

// multiline is an nbformat multi-line string: either one string or a list of
// lines that each keep their trailing newline.
type multiline []string

func (m *multiline) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = splitLines(s)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return err
	}
	*m = lines
	return nil
}

func (m multiline) String() string { return strings.Join(m, "") }

// splitLines splits s after every newline, keeping the newline.
func splitLines(s string) multiline {
	lines := make(multiline, 0, strings.Count(s, "\n")+1)
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

// cellID derives a stable cell id from position and payload.
func cellID(index int, b Block) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d:%s:%s", index, b.kind, b.text)))
	return hex.EncodeToString(sum[:])[:8]
}

// Encode serializes doc as nbformat 4.5 JSON and validates the result
// against the notebook schema. Output is deterministic for a given input.
func Encode(doc Document, opts EncodeOptions) ([]byte, error) {
	kernel := opts.Kernel
	if kernel == (Kernel{}) {
		kernel = DefaultKernel()
	}

	f := fileOut{
		Cells: make([]any, 0, len(doc.blocks)),
		Metadata: metadataOut{
			Kernelspec: kernelspecOut{
				DisplayName: kernel.DisplayName,
				Language:    kernel.Language,
				Name:        kernel.Name,
			},
			LanguageInfo: languageInfoOut{Name: kernel.Language},
		},
		NBFormat:      FormatMajor,
		NBFormatMinor: FormatMinor,
	}

	for i, b := range doc.blocks {
		// encoding/json would substitute U+FFFD and break the round trip.
		if !utf8.ValidString(b.text) {
			return nil, fmt.Errorf("%w: block %d: invalid UTF-8", ErrSerialization, i)
		}
		switch b.kind {
		case Narrative:
			f.Cells = append(f.Cells, markdownCellOut{
				CellType: b.kind.cellType(),
				ID:       cellID(i, b),
				Source:   splitLines(b.text),
			})
		case Snippet:
			f.Cells = append(f.Cells, codeCellOut{
				CellType: b.kind.cellType(),
				ID:       cellID(i, b),
				Outputs:  []json.RawMessage{},
				Source:   splitLines(b.text),
			})
		default:
			return nil, fmt.Errorf("%w: block %d: unknown kind %s", ErrSerialization, i, b.kind)
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	data := buf.Bytes()
	if err := Validate(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Decode parses nbformat v4 JSON into a Document. The input is validated
// against the notebook schema first. Raw cells have no block kind and are
// rejected.
func Decode(data []byte) (Document, error) {
	if err := Validate(data); err != nil {
		return Document{}, err
	}

	var f fileIn
	if err := json.Unmarshal(data, &f); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	blocks := make([]Block, 0, len(f.Cells))
	for i, c := range f.Cells {
		switch c.CellType {
		case "markdown":
			blocks = append(blocks, NewNarrative(c.Source.String()))
		case "code":
			blocks = append(blocks, NewSnippet(c.Source.String()))
		default:
			return Document{}, fmt.Errorf("%w: cell %d: unsupported cell type %q", ErrSerialization, i, c.CellType)
		}
	}
	return Document{blocks: blocks}, nil
}
