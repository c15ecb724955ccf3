package dataset

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/insumos/internal/record"
)

var now = time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(12, DefaultSeed, now)
	b := Generate(12, DefaultSeed, now)
	assert.Equal(t, a, b)

	c := Generate(12, DefaultSeed+1, now)
	assert.NotEqual(t, a, c)
}

func TestGenerate_Ranges(t *testing.T) {
	records := Generate(500, 7, now)
	require.Len(t, records, 500)

	latest := now.AddDate(0, 0, maxExpiryDays)
	for _, r := range records {
		assert.True(t, slices.Contains(Materials, r.Name()), r.Name())
		assert.True(t, slices.Contains(Categories, r.Category()), r.Category())
		assert.GreaterOrEqual(t, r.Quantity(), 1)
		assert.LessOrEqual(t, r.Quantity(), maxQuantity)

		at, ok := r.Expiry().Get()
		require.True(t, ok)
		assert.False(t, at.Before(now))
		assert.False(t, at.After(latest))
	}
}

func TestGenerate_NonPositive(t *testing.T) {
	assert.Empty(t, Generate(0, 1, now))
	assert.Empty(t, Generate(-3, 1, now))
}

func TestLoad_File(t *testing.T) {
	records, err := Load(filepath.Join("testdata", "records.yaml"))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "X", records[0].Name())
	assert.Equal(t, 5, records[0].Quantity())
	assert.Equal(t, "E1", records[0].Category())
	assert.False(t, records[0].Expiry().IsSet())

	at, ok := records[1].Expiry().Get()
	require.True(t, ok)
	assert.True(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Equal(at))

	at, ok = records[2].Expiry().Get()
	require.True(t, ok)
	assert.True(t, time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC).Equal(at))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read dataset")
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"negative quantity", "records:\n  - {name: A, quantity: -1, category: E1}\n"},
		{"empty name", "records:\n  - {name: \"\", quantity: 1, category: E1}\n"},
		{"missing category", "records:\n  - {name: A, quantity: 1}\n"},
		{"fractional quantity", "records:\n  - {name: A, quantity: 1.5, category: E1}\n"},
		{"unknown field", "records:\n  - {name: A, quantity: 1, category: E1, colour: red}\n"},
		{"bad expiry", "records:\n  - {name: A, quantity: 1, category: E1, expiry: soon}\n"},
		{"expiry with trailing text", "records:\n  - {name: A, quantity: 1, category: E1, expiry: 2026-02-10junk}\n"},
		{"expiry with clock time but no offset", "records:\n  - {name: A, quantity: 1, category: E1, expiry: \"2026-02-10 09:30\"}\n"},
		{"records not a list", "records: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("inline.yaml", []byte(tt.doc))
			require.Error(t, err)

			var schemaErr *SchemaError
			require.True(t, errors.As(err, &schemaErr), "got %v", err)
			assert.Equal(t, "inline.yaml", schemaErr.Source)
			assert.NotEmpty(t, schemaErr.Messages)
		})
	}
}

func TestParse_ExpiryForms(t *testing.T) {
	doc := "records:\n" +
		"  - {name: A, quantity: 1, category: E1, expiry: 2300-01-01}\n" +
		"  - {name: B, quantity: 1, category: E1, expiry: \"2026-02-10T09:30:00.5-03:00\"}\n"
	records, err := Parse("inline.yaml", []byte(doc))
	require.NoError(t, err)
	require.Len(t, records, 2)

	at, ok := records[0].Expiry().Get()
	require.True(t, ok)
	assert.Equal(t, 2300, at.Year())

	at, ok = records[1].Expiry().Get()
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 2, 10, 12, 30, 0, 5e8, time.UTC), at.UTC())
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse("broken.yaml", []byte("records: [\n"))
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.False(t, errors.As(err, &schemaErr))
	assert.Contains(t, err.Error(), "parse broken.yaml")
}

func TestParse_NullExpiryIsAbsent(t *testing.T) {
	records, err := Parse("inline.yaml", []byte("records:\n  - {name: A, quantity: 0, category: E1, expiry: null}\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.NoExpiry(), records[0].Expiry())
}

func TestParseExpiry_ImpossibleDate(t *testing.T) {
	_, err := parseExpiry("2026-02-30")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid expiry")
}
