package selector_test

import (
	"testing"

	"github.com/jonesrussell/pagesift/internal/selector"
	"github.com/stretchr/testify/assert"
)

func TestLooksDynamic_GeneratedPrefixes(t *testing.T) {
	assert.True(t, selector.LooksDynamic("css-1a2b3c"))
	assert.True(t, selector.LooksDynamic("sc-bdVaJa"))
	assert.True(t, selector.LooksDynamic("jss123"))
	assert.True(t, selector.LooksDynamic("styled-components-abc"))
	assert.True(t, selector.LooksDynamic("svelte-1x2y3z"))
}

func TestLooksDynamic_AuthoredNames(t *testing.T) {
	assert.False(t, selector.LooksDynamic("article-title"))
	assert.False(t, selector.LooksDynamic("storylink"))
	assert.False(t, selector.LooksDynamic("comment-tree"))
	assert.False(t, selector.LooksDynamic("item"))
	assert.False(t, selector.LooksDynamic("nav"))
}

func TestLooksDynamic_ShortTokens(t *testing.T) {
	assert.True(t, selector.LooksDynamic("a"))
	assert.True(t, selector.LooksDynamic("xy"))
	assert.True(t, selector.LooksDynamic(""))
}

func TestLooksDynamic_UUID(t *testing.T) {
	assert.True(t, selector.LooksDynamic("123e4567-e89b-12d3-a456-426614174000"))
}

func TestLooksDynamic_NumericSuffix(t *testing.T) {
	assert.True(t, selector.LooksDynamic("post-1234567890"))
	assert.False(t, selector.LooksDynamic("col-2"))
}

func TestLooksDynamic_HexRuns(t *testing.T) {
	assert.True(t, selector.LooksDynamic("a1b2c3"))
	assert.True(t, selector.LooksDynamic("box-deadb33f"))
	// Hex-looking letters without digits are treated as authored words.
	assert.False(t, selector.LooksDynamic("facade"))
}

func TestLooksDynamic_HashSegments(t *testing.T) {
	assert.True(t, selector.LooksDynamic("widget-x7f3a9"))
	assert.False(t, selector.LooksDynamic("widget-body"))
}
