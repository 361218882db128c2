package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackerDiscardsStaleLookups(t *testing.T) {
	tr := NewTracker()

	first := tr.Begin("emp-1")
	second := tr.Begin("emp-1")

	assert.False(t, tr.Latest("emp-1", first))
	assert.True(t, tr.Latest("emp-1", second))
}

func TestTrackerKeysAreIndependent(t *testing.T) {
	tr := NewTracker()

	a := tr.Begin("emp-a")
	b := tr.Begin("emp-b")

	assert.True(t, tr.Latest("emp-a", a))
	assert.True(t, tr.Latest("emp-b", b))
}

func TestTrackerInvalidate(t *testing.T) {
	tr := NewTracker()

	id := tr.Begin("emp-1")
	tr.Invalidate("emp-1")

	assert.False(t, tr.Latest("emp-1", id))
}
