package include

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedger(t *testing.T) {
	t.Parallel()

	l := NewLedger()

	assert.False(t, l.Contains("/a.h"))

	l.Add("/a.h")
	assert.True(t, l.Contains("/a.h"))
	assert.False(t, l.Contains("/b.h"))

	// Adding twice is harmless; the set only grows.
	l.Add("/a.h")
	assert.True(t, l.Contains("/a.h"))
}
