package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "credcache.log")

	l := NewClientLogger("client", logPath)
	l.Info().Msg("written to file")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Contains(t, string(data), `"role":"client"`)
}

func TestNewClientLogger_FallsBackWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()

	// Каталог вместо файла: OpenFile упадёт, логгер должен остаться рабочим
	l := NewClientLogger("client", dir)
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("fallback") })
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestWithRunID_AttachesRunIDToContextLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("run")
	parent.Logger = parent.Output(&buf)

	ctx, child := parent.WithRunID(context.Background())
	require.NotNil(t, child)

	FromContext(ctx).Info().Msg("inside run")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	runID, ok := entry["run_id"].(string)
	require.True(t, ok, "expected run_id string field")
	assert.Len(t, runID, 36)
	assert.Equal(t, "run", entry["role"])
}

func TestWithRunID_DistinctPerCall(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("run")
	parent.Logger = parent.Output(&buf)

	_, a := parent.WithRunID(context.Background())
	_, b := parent.WithRunID(context.Background())
	a.Info().Msg("a")
	b.Info().Msg("b")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var ea, eb map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ea))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &eb))
	assert.NotEqual(t, ea["run_id"], eb["run_id"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}
