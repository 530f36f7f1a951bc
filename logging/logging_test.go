package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestSetGlobalLogger(t *testing.T) {
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	noop := &NoOpLogger{}
	SetGlobalLogger(noop)
	assert.Equal(t, Logger(noop), GetGlobalLogger())

	// nil falls back to the no-op logger instead of panicking later
	SetGlobalLogger(nil)
	assert.NotNil(t, GetGlobalLogger())
	Debug("still safe after nil logger")
}

func TestWithFieldsMergesPresets(t *testing.T) {
	logger := NewDefaultLoggerNoColor()
	child := logger.WithFields(Fields{"component": "engine"}).WithFields(Fields{"function": "voice"})

	impl, ok := child.(*DefaultLogger)
	assert.True(t, ok)
	assert.Equal(t, "engine", impl.fields["component"])
	assert.Equal(t, "voice", impl.fields["function"])

	// Parent stays untouched.
	assert.Empty(t, logger.fields)
}

func TestFormatMessage(t *testing.T) {
	logger := NewDefaultLoggerNoColor()
	msg := logger.formatMessage(WarnLevel, nil, "drifting", Fields{"mean": 70})
	assert.Contains(t, msg, "[WARN]")
	assert.Contains(t, msg, "drifting")
	assert.Contains(t, msg, "mean")
}
