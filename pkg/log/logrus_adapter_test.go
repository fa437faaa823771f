package log

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapterFields(t *testing.T) {
	logger, hook := test.NewNullLogger()
	adapter := NewLogrusAdapter(logger)

	adapter.Log(Event{
		Level:     LevelWarn,
		Component: "geom.Vec",
		Operation: "ProjectOnPlane",
		Value:     "1e-07",
		Message:   "plane normal is not normalized",
	})

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "plane normal is not normalized", entry.Message)
	assert.Equal(t, "geom.Vec", entry.Data["component"])
	assert.Equal(t, "ProjectOnPlane", entry.Data["op"])
	assert.Equal(t, "1e-07", entry.Data["value"])
	assert.NotContains(t, entry.Data, "attr")
}

func TestLogrusAdapterLevels(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	adapter := NewLogrusAdapter(logger)

	levels := map[Level]logrus.Level{
		LevelDebug: logrus.DebugLevel,
		LevelInfo:  logrus.InfoLevel,
		LevelWarn:  logrus.WarnLevel,
		LevelError: logrus.ErrorLevel,
	}
	for lvl, want := range levels {
		hook.Reset()
		adapter.Log(Event{Level: lvl, Message: lvl.String()})
		require.Len(t, hook.Entries, 1, lvl.String())
		assert.Equal(t, want, hook.Entries[0].Level, lvl.String())
	}
}
