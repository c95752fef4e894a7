package colors

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() { SetOutput(nil, nil) })
	return &out, &errOut
}

type recordingLogger struct {
	levels   []string
	messages []string
}

func (r *recordingLogger) record(level, msg string) {
	r.levels = append(r.levels, level)
	r.messages = append(r.messages, msg)
}

func (r *recordingLogger) Debug(msg string, args ...any) { r.record("debug", msg) }
func (r *recordingLogger) Info(msg string, args ...any)  { r.record("info", msg) }
func (r *recordingLogger) Warn(msg string, args ...any)  { r.record("warn", msg) }
func (r *recordingLogger) Error(msg string, args ...any) { r.record("error", msg) }

func TestError(t *testing.T) {
	_, errOut := captureOutput(t)

	Error("something went wrong")

	output := errOut.String()
	assert.Contains(t, output, "Error:")
	assert.Contains(t, output, "something went wrong")
	assert.Contains(t, output, Red)
}

func TestSuccess(t *testing.T) {
	out, _ := captureOutput(t)

	Success("operation completed")

	assert.Contains(t, out.String(), checkmark)
	assert.Contains(t, out.String(), "operation completed")
	assert.Contains(t, out.String(), Green)
}

func TestWarningAndInfo(t *testing.T) {
	out, errOut := captureOutput(t)

	Warning("careful")
	Info("hello", "world")

	assert.Contains(t, errOut.String(), "Warning:")
	assert.Contains(t, out.String(), "hello world")
}

func TestDebugRespectsFlag(t *testing.T) {
	_, errOut := captureOutput(t)
	SetDebug(false)

	Debug("hidden")
	assert.Empty(t, errOut.String())

	SetDebug(true)
	defer SetDebug(false)
	Debug("shown")
	assert.Contains(t, errOut.String(), "shown")
}

func TestMirrorsToLogger(t *testing.T) {
	captureOutput(t)
	rec := &recordingLogger{}
	SetLogger(rec)
	defer SetLogger(nil)

	Error("e")
	Warning("w")
	Success("s")

	assert.Equal(t, []string{"error", "warn", "info"}, rec.levels)
	assert.Equal(t, []string{"e", "w", "s"}, rec.messages)
}
