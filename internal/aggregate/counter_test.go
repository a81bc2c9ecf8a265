package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := NewCounter()
	c.Inc("b")
	c.Inc("a")
	c.Inc("b")
	c.Add("c", 3)

	assert.Equal(t, 2, c.Get("b"))
	assert.Equal(t, 1, c.Get("a"))
	assert.Equal(t, 3, c.Get("c"))
	assert.Equal(t, 0, c.Get("missing"))
	assert.Equal(t, []string{"b", "a", "c"}, c.Keys())
	assert.Equal(t, 3, c.Len())

	var nilCounter *Counter
	assert.Equal(t, 0, nilCounter.Get("x"))
	assert.Equal(t, 0, nilCounter.Len())
	assert.Empty(t, nilCounter.Keys())
}

func TestGroupedCounter(t *testing.T) {
	g := NewGroupedCounter()
	g.Inc("atraxa", "sol ring")
	g.Inc("atraxa", "sol ring")
	g.Inc("korvold", "sol ring")

	assert.Equal(t, 2, g.Get("atraxa", "sol ring"))
	assert.Equal(t, 1, g.Get("korvold", "sol ring"))
	assert.Equal(t, 0, g.Get("korvold", "island"))
	assert.Equal(t, 0, g.Get("missing", "sol ring"))
	assert.Nil(t, g.Group("missing"))
	assert.Equal(t, []string{"atraxa", "korvold"}, g.Groups())
}
