package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByName(t *testing.T) {
	theme, ok := ByName("plain")
	assert.True(t, ok)
	assert.Equal(t, Plain, theme)

	theme, ok = ByName("default")
	assert.True(t, ok)
	assert.Equal(t, Default, theme)

	_, ok = ByName("neon")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"default", "plain"}, Names())
}
