package anchor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintf(t *testing.T) {
	var buffer bytes.Buffer
	window := NewWriter(&buffer, Red)
	window.Printf("found %d tracks", 3)
	window.AnchorPrintf("failure")
	assert.Contains(t, buffer.String(), "found 3 tracks\n")
	assert.Contains(t, buffer.String(), "failure")
}

func TestLot(t *testing.T) {
	var buffer bytes.Buffer
	window := NewWriter(&buffer, Red)
	lot := window.Lot("search")
	assert.Same(t, lot, window.Lot("search"))

	lot.Printf("%s by %s", "Bohemian Rhapsody", "Queen")
	lot.Wipe()
	assert.Empty(t, buffer.String())

	lot.Close("12 tracks")
	assert.Contains(t, buffer.String(), "search")
	assert.Contains(t, buffer.String(), "done (12 tracks)")
	assert.NotSame(t, lot, window.Lot("search"))
}
