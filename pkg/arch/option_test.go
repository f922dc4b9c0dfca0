package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnknownVsKnownEmpty(t *testing.T) {
	unknown := Unknown[string]()
	assert.False(t, unknown.IsKnown())
	_, ok := unknown.Get()
	assert.False(t, ok)
	assert.Equal(t, 0, unknown.Len())

	empty := Known([]string{})
	assert.True(t, empty.IsKnown())
	items, ok := empty.Get()
	assert.True(t, ok)
	assert.Empty(t, items)

	assert.False(t, equalOptional(unknown, empty))
}

func TestOptional_GetReturnsCopy(t *testing.T) {
	opt := Known([]string{"a", "b"})

	items, ok := opt.Get()
	require.True(t, ok)
	items[0] = "mutated"

	again, _ := opt.Get()
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestOptional_KnownCopiesInput(t *testing.T) {
	input := []string{"a"}
	opt := Known(input)
	input[0] = "mutated"

	items, _ := opt.Get()
	assert.Equal(t, []string{"a"}, items)
}

func TestOptional_Equal(t *testing.T) {
	assert.True(t, equalOptional(Known([]string{"a"}), Known([]string{"a"})))
	assert.False(t, equalOptional(Known([]string{"a"}), Known([]string{"b"})))
	assert.True(t, equalOptional(Unknown[string](), Unknown[string]()))
}
