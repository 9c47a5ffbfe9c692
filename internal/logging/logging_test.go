package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreams(t *testing.T) {
	var ops, diag bytes.Buffer
	SetLogWriters(LogWriters{Ops: &ops, Diag: &diag})
	t.Cleanup(func() { SetLogWriters(LogWriters{}) })

	Opsf("missing %s", "canvas")
	Diagf("grid %d", 200)
	Tracef("dropped")

	assert.Contains(t, ops.String(), "[targets] ")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(ops.String()), "missing canvas"))
	assert.Contains(t, diag.String(), "grid 200")
	assert.NotContains(t, diag.String(), "dropped")
}

func TestDisabledStreams(t *testing.T) {
	SetLogWriters(LogWriters{})
	assert.NotPanics(t, func() {
		Opsf("silently discarded: %d", 123)
		Diagf("silently discarded")
		Tracef("silently discarded")
	})
}
