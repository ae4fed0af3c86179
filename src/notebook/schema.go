package notebook

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// SupportedFormats is the nbformat version range accepted by Validate.
const SupportedFormats = ">= 4.0, < 5.0"

const schemaURL = "https://nbforge.sofmeright.dev/schema/nbformat.v4.schema.json"

//go:embed nbformat.v4.schema.json
var schemaJSON []byte

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return c.Compile(schemaURL)
})

// formatHeader holds the version fields checked before schema validation.
type formatHeader struct {
	NBFormat      *int `json:"nbformat"`
	NBFormatMinor *int `json:"nbformat_minor"`
}

// Validate checks encoded notebook bytes: the nbformat version must fall in
// SupportedFormats and the document must match the embedded v4 schema.
// Every failure matches ErrSerialization.
func Validate(data []byte) error {
	var hdr formatHeader
	if err := json.Unmarshal(data, &hdr); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if hdr.NBFormat == nil || hdr.NBFormatMinor == nil {
		return fmt.Errorf("%w: missing nbformat version", ErrSerialization)
	}
	if err := CheckFormat(*hdr.NBFormat, *hdr.NBFormatMinor); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("%w: compiling notebook schema: %w", ErrSerialization, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return nil
}

// CheckFormat reports whether nbformat major.minor is in SupportedFormats.
func CheckFormat(major, minor int) error {
	v, err := semver.NewVersion(fmt.Sprintf("%d.%d.0", major, minor))
	if err != nil {
		return fmt.Errorf("invalid nbformat version %d.%d: %w", major, minor, err)
	}
	c, err := semver.NewConstraint(SupportedFormats)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("nbformat %d.%d is outside supported range %q", major, minor, SupportedFormats)
	}
	return nil
}
