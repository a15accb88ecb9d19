package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderLines(t *testing.T) {
	log, rec := NewRecorder()
	log.Debug("parse start", "rule", "select")
	log.Info("done")
	log.Debug("parse start", "rule", "expr")

	require.Len(t, rec.Lines(""), 3)
	starts := rec.Lines("parse start")
	require.Len(t, starts, 2)
	assert.Contains(t, starts[1], "rule=expr")
	assert.Len(t, rec.Lines("done"), 1)
	assert.Empty(t, rec.Lines("missing"))
}

func TestNewTestLogger(t *testing.T) {
	NewTestLogger(t).Debug("hello", "k", 1)
}
