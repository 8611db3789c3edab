package logging

import (
	"codeberg.org/miketth/keymapd/pkg/keycode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

func TestReporterLogsEveryReport(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewReporter(zap.New(core).Sugar())

	require.NoError(t, r.Press(keycode.KC_A))
	require.NoError(t, r.Release(keycode.KC_A))
	require.NoError(t, r.Wheel(-1))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "press", entries[0].Message)
	assert.Equal(t, "release", entries[1].Message)
	assert.Equal(t, map[string]interface{}{"delta": int64(-1)}, entries[2].ContextMap())
}
