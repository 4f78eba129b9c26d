package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyHistory(t *testing.T) {
	var h History
	assert.False(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())

	_, ok := h.Current()
	assert.False(t, ok)

	_, ok = h.Back()
	assert.False(t, ok)
	_, ok = h.Forward()
	assert.False(t, ok)
}

func TestFirstSelectHasNothingBehind(t *testing.T) {
	h := New()
	h.Select(PinEntry("GPIO21"))
	assert.False(t, h.CanGoBack())
	cur, ok := h.Current()
	assert.True(t, ok)
	assert.Equal(t, PinEntry("GPIO21"), cur)
}

func TestBackThenSelectClearsForward(t *testing.T) {
	h := New()
	h.Select(PinEntry("A"))
	h.Select(PinEntry("B"))

	prev, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, PinEntry("A"), prev)
	cur, _ := h.Current()
	assert.Equal(t, PinEntry("A"), cur)
	assert.True(t, h.CanGoForward())
	assert.False(t, h.CanGoBack())

	h.Select(PinEntry("C"))
	assert.False(t, h.CanGoForward())
	assert.True(t, h.CanGoBack())
}

func TestForwardRestoresEntry(t *testing.T) {
	h := New()
	h.Select(PinEntry("A"))
	h.Select(PinEntry("B"))
	h.Select(PinEntry("C"))

	h.Back()
	h.Back()
	next, ok := h.Forward()
	assert.True(t, ok)
	assert.Equal(t, PinEntry("B"), next)

	next, ok = h.Forward()
	assert.True(t, ok)
	assert.Equal(t, PinEntry("C"), next)
	assert.False(t, h.CanGoForward())

	back, forward := h.depth()
	assert.Equal(t, 2, back)
	assert.Equal(t, 0, forward)
}

func TestReselectCurrentClearsForward(t *testing.T) {
	h := New()
	h.Select(PinEntry("A"))
	h.Select(PinEntry("B"))
	h.Back()

	h.Select(PinEntry("A"))
	assert.False(t, h.CanGoForward())
	assert.False(t, h.CanGoBack(), "current entry is not pushed twice")
	cur, _ := h.Current()
	assert.Equal(t, PinEntry("A"), cur)
}

func TestCategoryEntriesAreDistinct(t *testing.T) {
	h := New()
	h.Select(PinEntry("power"))
	h.Select(CategoryEntry("power"))
	assert.True(t, h.CanGoBack())
	cur, _ := h.Current()
	assert.Equal(t, KindCategory, cur.Kind)
	assert.Equal(t, "category", cur.Kind.String())
}
