package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("Dune", 0))
	assert.Equal(t, "Dune", Truncate("Dune", 4))
	assert.Equal(t, "Du", Truncate("Dune", 2))
	assert.Equal(t, "El Pa...", Truncate("El Padrino", 8))
	assert.Equal(t, "Ámé...", Truncate("Ámélie Poulain", 6))
}

func TestHighlightParts(t *testing.T) {
	parts := HighlightParts("Dune", []int{0, 1})
	if assert.Len(t, parts, 2) {
		assert.Equal(t, "Du", parts[0].Text)
		assert.NotNil(t, parts[0].Foreground)
		assert.Equal(t, "ne", parts[1].Text)
		assert.Nil(t, parts[1].Foreground)
	}

	plain := HighlightParts("Dune", nil)
	assert.Equal(t, []RowPart{{Text: "Dune"}}, plain)
}
