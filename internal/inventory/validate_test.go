package inventory

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := Item{Name: "Speaker", Category: "Audio", Stock: 3, Price: 120000}

	tests := []struct {
		name  string
		mut   func(*Item)
		field Field
	}{
		{"valid", func(*Item) {}, ""},
		{"blank name", func(it *Item) { it.Name = "   " }, Name},
		{"name at limit", func(it *Item) { it.Name = strings.Repeat("a", 50) }, ""},
		{"name too long", func(it *Item) { it.Name = strings.Repeat("a", 51) }, Name},
		{"padded name at limit", func(it *Item) { it.Name = "  " + strings.Repeat("a", 50) + " " }, ""},
		{"missing category", func(it *Item) { it.Category = "" }, Category},
		{"unknown category", func(it *Item) { it.Category = "Furniture" }, Category},
		{"negative stock", func(it *Item) { it.Stock = -1 }, Stock},
		{"stock at limit", func(it *Item) { it.Stock = MaxStock }, ""},
		{"stock too large", func(it *Item) { it.Stock = MaxStock + 1 }, Stock},
		{"negative price", func(it *Item) { it.Price = -5 }, Price},
		{"price at limit", func(it *Item) { it.Price = MaxPrice }, ""},
		{"price too large", func(it *Item) { it.Price = MaxPrice + 1 }, Price},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := valid
			tt.mut(&it)
			err := Validate(it)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidItem))
			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestSamplePresetsAreValid(t *testing.T) {
	for _, name := range PresetNames() {
		items, err := Preset(name)
		require.NoError(t, err)
		for i, it := range items {
			assert.NoError(t, Validate(it), "preset %s item %d", name, i)
		}
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("nope")
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" Category ")
	require.NoError(t, err)
	assert.Equal(t, Category, f)

	_, err = ParseField("weight")
	assert.True(t, errors.Is(err, ErrUnknownField))
}
