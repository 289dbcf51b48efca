package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListAddPrepends(t *testing.T) {
	l := NewList()
	l.Add("first")
	l.Add("second")
	assert.Equal(t, []string{"second", "first"}, l.Items())
}

func TestListSelectClampsToLast(t *testing.T) {
	l := NewList()
	l.Add("a")
	l.Add("b")
	v, idx := l.Select(10)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, idx)
}

func TestListSelectEmpty(t *testing.T) {
	l := NewList()
	v, idx := l.Select(0)
	assert.Equal(t, "", v)
	assert.Equal(t, 0, idx)
}

func TestListRemoveAt(t *testing.T) {
	l := NewList()
	l.Add("a")
	l.Add("b")
	l.Add("c")
	l.RemoveAt(1)
	assert.Equal(t, []string{"c", "a"}, l.Items())
}

func TestListSetPosnClamps(t *testing.T) {
	l := NewList()
	l.Add("a")
	l.SetPosn(-5)
	assert.Equal(t, 0, l.Posn())
	l.SetPosn(50)
	assert.Equal(t, 0, l.Posn())
}

func TestListClear(t *testing.T) {
	l := NewList()
	l.Add("a")
	l.Clear()
	assert.Equal(t, 0, l.Count())
}
