package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstgenius/internal/domain"
	"gstgenius/internal/ruleset"
)

func TestSuggestHSN(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"simple keyword", "Dell Laptop 14 inch", "8471"},
		{"case insensitive", "CONSULTING retainer", "9983"},
		{"no match", "gravel delivery", ""},
		{"empty description", "", ""},
		{"whitespace only", "   ", ""},
		{"longest keyword wins", "smart watch strap", "8517"},
		{"earphone beats phone", "wireless earphone", "8518"},
		{"multi word keyword", "2TB hard disk", "8471"},
		{"substring inside word still matches", "accounting services", "9982"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ruleset.SuggestHSN(tt.description))
		})
	}
}

func TestAutoFillHSN(t *testing.T) {
	t.Run("fills empty code", func(t *testing.T) {
		item := domain.LineItem{Description: "Laptop repair", HSN: ""}
		assert.True(t, ruleset.AutoFillHSN(&item))
		assert.Equal(t, "8471", item.HSN)
	})

	t.Run("replaces short code", func(t *testing.T) {
		item := domain.LineItem{Description: "Laptop repair", HSN: "84"}
		assert.True(t, ruleset.AutoFillHSN(&item))
		assert.Equal(t, "8471", item.HSN)
	})

	t.Run("keeps explicit code", func(t *testing.T) {
		item := domain.LineItem{Description: "Laptop repair", HSN: "9987"}
		assert.False(t, ruleset.AutoFillHSN(&item))
		assert.Equal(t, "9987", item.HSN)
	})

	t.Run("no suggestion leaves code alone", func(t *testing.T) {
		item := domain.LineItem{Description: "gravel delivery", HSN: ""}
		assert.False(t, ruleset.AutoFillHSN(&item))
		assert.Equal(t, "", item.HSN)
	})
}
