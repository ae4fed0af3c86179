package notebook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func sampleDocument() Document {
	return Assemble(
		NewNarrative("# Title\n\nIntro with π and a < b."),
		NewSnippet("x = [1, 2]\nprint(x)"),
		NewNarrative("## Questions  \nAnswer."),
	)
}

// notebookJSON builds a minimal notebook around raw cell JSON.
func notebookJSON(major, minor int, cells ...string) []byte {
	return []byte(fmt.Sprintf(`{"cells": [%s], "metadata": {}, "nbformat": %d, "nbformat_minor": %d}`,
		strings.Join(cells, ", "), major, minor))
}

const markdownCell = `{"cell_type": "markdown", "metadata": {}, "source": "# Title\nbody"}`

func TestAssemble_PreservesOrderAndCopies(t *testing.T) {
	blocks := []Block{NewNarrative("a"), NewSnippet("b"), NewNarrative("c")}
	doc := Assemble(blocks...)

	blocks[0] = NewSnippet("mutated")

	want := []Kind{Narrative, Snippet, Narrative}
	if got := doc.Kinds(); !reflect.DeepEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	if doc.Block(0).Text() != "a" {
		t.Fatalf("document shares caller slice: block 0 = %q", doc.Block(0).Text())
	}

	out := doc.Blocks()
	out[1] = NewNarrative("changed")
	if doc.Block(1).Kind() != Snippet {
		t.Fatal("Blocks() must return a copy")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Narrative, "narrative"},
		{Snippet, "snippet"},
		{Kind(7), "kind(7)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want multiline
	}{
		{"", multiline{}},
		{"one", multiline{"one"}},
		{"one\n", multiline{"one\n"}},
		{"one\ntwo", multiline{"one\n", "two"}},
		{"\n\n", multiline{"\n", "\n"}},
	}
	for _, tt := range tests {
		got := splitLines(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("splitLines(%q) does not rejoin: %q", tt.in, got.String())
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	a, err := Encode(sampleDocument(), EncodeOptions{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	b, err := Encode(sampleDocument(), EncodeOptions{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("two encodings of the same document differ")
	}
}

func TestEncode_Layout(t *testing.T) {
	data, err := Encode(sampleDocument(), EncodeOptions{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if !bytes.HasSuffix(data, []byte("}\n")) {
		t.Error("output should end with a newline")
	}
	if !bytes.Contains(data, []byte("π")) || !bytes.Contains(data, []byte("a < b")) {
		t.Error("non-ASCII and HTML characters should be written literally")
	}
	if !bytes.HasPrefix(data, []byte("{\n \"cells\": [")) {
		t.Errorf("unexpected prefix: %q", data[:20])
	}

	var raw struct {
		Cells         []map[string]any `json:"cells"`
		Metadata      map[string]any   `json:"metadata"`
		NBFormat      int              `json:"nbformat"`
		NBFormatMinor int              `json:"nbformat_minor"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if raw.NBFormat != 4 || raw.NBFormatMinor != 5 {
		t.Errorf("version = %d.%d, want 4.5", raw.NBFormat, raw.NBFormatMinor)
	}
	if len(raw.Cells) != 3 {
		t.Fatalf("cells = %d, want 3", len(raw.Cells))
	}

	md := raw.Cells[0]
	if md["cell_type"] != "markdown" {
		t.Errorf("cell 0 type = %v", md["cell_type"])
	}
	if _, ok := md["execution_count"]; ok {
		t.Error("markdown cell must not carry execution_count")
	}
	if src, _ := md["source"].([]any); len(src) != 3 || src[0] != "# Title\n" {
		t.Errorf("markdown source lines = %#v", md["source"])
	}

	code := raw.Cells[1]
	if code["cell_type"] != "code" {
		t.Errorf("cell 1 type = %v", code["cell_type"])
	}
	if ec, ok := code["execution_count"]; !ok || ec != nil {
		t.Errorf("execution_count = %v (present %v), want null", ec, ok)
	}
	if outs, ok := code["outputs"].([]any); !ok || len(outs) != 0 {
		t.Errorf("outputs = %#v, want []", code["outputs"])
	}

	ks, _ := raw.Metadata["kernelspec"].(map[string]any)
	if ks["name"] != "python3" || ks["language"] != "python" {
		t.Errorf("kernelspec = %#v", ks)
	}

	ids := map[any]bool{}
	for _, c := range raw.Cells {
		ids[c["id"]] = true
	}
	if len(ids) != 3 {
		t.Errorf("cell ids are not unique: %v", ids)
	}
}

func TestEncode_CustomKernel(t *testing.T) {
	k := Kernel{Name: "ir", DisplayName: "R", Language: "R"}
	data, err := Encode(sampleDocument(), EncodeOptions{Kernel: k})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Contains(data, []byte(`"name": "ir"`)) {
		t.Errorf("custom kernel not recorded:\n%s", data)
	}
}

func TestEncode_RejectsUnencodableBlocks(t *testing.T) {
	tests := []struct {
		name  string
		block Block
	}{
		{"invalid utf-8 snippet", NewSnippet("x = '\xff'")},
		{"invalid utf-8 narrative", NewNarrative("caf\xe9")},
		{"unknown kind", Block{kind: Kind(7), text: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Assemble(NewNarrative("# ok"), tt.block)
			if _, err := Encode(doc, EncodeOptions{}); !errors.Is(err, ErrSerialization) {
				t.Fatalf("err = %v, want ErrSerialization", err)
			}
		})
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	doc := sampleDocument()
	data, err := Encode(doc, EncodeOptions{})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Len() != doc.Len() {
		t.Fatalf("len = %d, want %d", got.Len(), doc.Len())
	}
	for i := range doc.Blocks() {
		if got.Block(i) != doc.Block(i) {
			t.Errorf("block %d = %+v, want %+v", i, got.Block(i), doc.Block(i))
		}
	}
}

func TestDecode_StringSource(t *testing.T) {
	doc, err := Decode(notebookJSON(4, 4, markdownCell))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Len() != 1 || doc.Block(0).Text() != "# Title\nbody" {
		t.Fatalf("unexpected document: %+v", doc.Blocks())
	}
}

func TestDecode_RejectsRawCell(t *testing.T) {
	raw := `{"cell_type": "raw", "metadata": {}, "source": "x"}`
	_, err := Decode(notebookJSON(4, 5, raw))
	if !errors.Is(err, ErrSerialization) {
		t.Fatalf("err = %v, want ErrSerialization", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"valid", notebookJSON(4, 5, markdownCell), false},
		{"no cells", notebookJSON(4, 0), false},
		{"too old", notebookJSON(3, 0, markdownCell), true},
		{"too new", notebookJSON(5, 0, markdownCell), true},
		{"markdown with outputs", notebookJSON(4, 5, `{"cell_type": "markdown", "metadata": {}, "source": "", "outputs": []}`), true},
		{"code without outputs", notebookJSON(4, 5, `{"cell_type": "code", "metadata": {}, "source": "", "execution_count": null}`), true},
		{"bad cell id", notebookJSON(4, 5, `{"cell_type": "markdown", "id": "not valid!", "metadata": {}, "source": ""}`), true},
		{"missing version", []byte(`{"cells": [], "metadata": {}}`), true},
		{"not json", []byte(`{"cells": [`), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if tt.wantErr {
				if !errors.Is(err, ErrSerialization) {
					t.Fatalf("err = %v, want ErrSerialization", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		major, minor int
		ok           bool
	}{
		{4, 0, true},
		{4, 5, true},
		{4, 99, true},
		{3, 0, false},
		{5, 0, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		err := CheckFormat(tt.major, tt.minor)
		if (err == nil) != tt.ok {
			t.Errorf("CheckFormat(%d, %d) = %v, want ok=%v", tt.major, tt.minor, err, tt.ok)
		}
	}
}
