package memo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/elevator/internal/domain"
)

func TestInsertAndContains(t *testing.T) {
	m := New()

	assert.False(t, m.Contains(domain.Up, "E1|a|b"))
	assert.True(t, m.Insert(domain.Up, "E1|a|b"))
	assert.False(t, m.Insert(domain.Up, "E1|a|b"), "second insert must report a duplicate")
	assert.True(t, m.Contains(domain.Up, "E1|a|b"))

	// directions are independent
	assert.False(t, m.Contains(domain.Down, "E1|a|b"))
	assert.True(t, m.Insert(domain.Down, "E1|a|b"))

	assert.Equal(t, 1, m.Len(domain.Up))
	assert.Equal(t, 1, m.Len(domain.Down))
}

func TestReset(t *testing.T) {
	m := New()
	m.Insert(domain.Up, "x")
	m.Insert(domain.Down, "y")

	m.Reset()

	assert.Zero(t, m.Len(domain.Up))
	assert.Zero(t, m.Len(domain.Down))
	assert.True(t, m.Insert(domain.Up, "x"))
}
