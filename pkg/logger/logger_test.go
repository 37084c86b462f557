package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "sampler")
	l.Println("Failed to read pixel")
	assert.Contains(t, buf.String(), "sampler: Failed to read pixel")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Println("nothing") })
}
