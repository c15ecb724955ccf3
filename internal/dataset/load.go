package dataset

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/insumos/internal/record"
)

//go:embed schema.cue
var schemaSource string

// document is the typed view of a dataset file.
type document struct {
	Records []recordDoc `yaml:"records"`
}

type recordDoc struct {
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
	Category string `yaml:"category"`
	Expiry   string `yaml:"expiry,omitempty"`
}

// SchemaError lists every schema violation found in a dataset document.
type SchemaError struct {
	Source   string
	Messages []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s does not match the dataset schema: %s",
		e.Source, strings.Join(e.Messages, "; "))
}

// Load reads and parses the dataset file at path.
func Load(path string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes a YAML dataset. source names the document in error messages.
func Parse(source string, data []byte) ([]record.Record, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	if err := validate(source, raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", source, err)
	}

	out := make([]record.Record, 0, len(doc.Records))
	for i, rd := range doc.Records {
		expiry, err := parseExpiry(rd.Expiry)
		if err != nil {
			return nil, fmt.Errorf("%s: records[%d]: %w", source, i, err)
		}
		r, err := record.New(rd.Name, rd.Quantity, rd.Category, expiry)
		if err != nil {
			return nil, fmt.Errorf("%s: records[%d]: %w", source, i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// validate unifies the raw document with #Dataset.
func validate(source string, raw map[string]any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile dataset schema: %w", err)
	}

	data := ctx.Encode(raw)
	if err := data.Err(); err != nil {
		return fmt.Errorf("encode %s: %w", source, err)
	}

	v := schema.LookupPath(cue.ParsePath("#Dataset")).Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return schemaError(source, err)
	}
	return nil
}

func schemaError(source string, err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &SchemaError{Source: source, Messages: []string{err.Error()}}
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return &SchemaError{Source: source, Messages: msgs}
}

func parseExpiry(s string) (record.Expiry, error) {
	if s == "" {
		return record.NoExpiry(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return record.ExpiresAt(t), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return record.Expiry{}, fmt.Errorf("invalid expiry %q: want YYYY-MM-DD or RFC 3339", s)
	}
	return record.ExpiresAt(t), nil
}
