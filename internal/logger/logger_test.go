package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T, level string, format OutputFormat, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	logger = nil
	InitLogger(level, format)

	fn()
	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:     "info log",
			level:    "info",
			logFn:    func() { Info("Logged in to pulp") },
			contains: []string{"Logged in to pulp"},
		},
		{
			name:     "debug log with debug level",
			level:    "debug",
			logFn:    func() { Debug("Running command", Fields{"command": "pulp-admin rpm repo list --details"}) },
			contains: []string{"Running command", "level=DEBUG"},
		},
		{
			name:     "debug log with info level",
			level:    "info",
			logFn:    func() { Debug("Running command") },
			excludes: []string{"Running command"},
		},
		{
			name:     "warn log with fields",
			level:    "warn",
			logFn:    func() { Warn("Skipping block without id", Fields{"repo_type": "rpm", "line": 42}) },
			contains: []string{"Skipping block without id", "level=WARN", "repo_type=rpm", "line=42"},
		},
		{
			name:     "info hidden at error level",
			level:    "error",
			logFn:    func() { Info("Repository created") },
			excludes: []string{"Repository created"},
		},
		{
			name:     "success log",
			level:    "info",
			logFn:    func() { Success("Repository created", Fields{"repo_id": "base"}) },
			contains: []string{"Repository created", "status=success", "repo_id=base"},
		},
		{
			name:     "formatted debug with fields",
			level:    "debug",
			logFn:    func() { DebugfWithFields(Fields{"run_id": "abc"}, "applying %d resources", 3) },
			contains: []string{"applying 3 resources", "run_id=abc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t, tt.level, FormatText, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, out, notWant)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	output := captureOutput(t, "info", FormatJSON, func() {
		Info("Apply finished", Fields{"run_id": "abc", "changed": 2, "dry_run": false})
	})

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(output)), &record))
	assert.Equal(t, "Apply finished", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "abc", record["run_id"])
	assert.Equal(t, float64(2), record["changed"])
	assert.Equal(t, false, record["dry_run"])
}

func TestSetLogFile(t *testing.T) {
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()
	logger = nil
	InitLogger("info", FormatText)

	path := filepath.Join(t.TempDir(), "logs", "pulpctl.log")
	require.NoError(t, SetLogFile(path))
	Info("Repository deleted", Fields{"repo_id": "legacy"})
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Repository deleted")
	assert.Contains(t, buf.String(), "Repository deleted", "records still reach the console")

	buf.Reset()
	Info("after close")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after close")
	assert.Contains(t, buf.String(), "after close")
}

func TestSetLogFile_EmptyPathDisables(t *testing.T) {
	require.NoError(t, SetLogFile(""))
	assert.NoError(t, Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", ParseLevel("debug").String())
	assert.Equal(t, "WARN", ParseLevel("Warning").String())
	assert.Equal(t, "ERROR", ParseLevel("ERROR").String())
	assert.Equal(t, "INFO", ParseLevel("chatty").String())
}

func TestGetLogger_InitializesIfNil(t *testing.T) {
	logger = nil
	assert.NotPanics(t, func() {
		lg := GetLogger()
		assert.NotNil(t, lg)
	})
}

func TestMergeFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []Fields
		expect map[string]interface{}
	}{
		{
			name:   "single field",
			fields: []Fields{{"repo_id": "base"}},
			expect: map[string]interface{}{"repo_id": "base"},
		},
		{
			name:   "multiple fields",
			fields: []Fields{{"repo_id": "base"}, {"attempt": 1, "dry_run": true}},
			expect: map[string]interface{}{"repo_id": "base", "attempt": 1, "dry_run": true},
		},
		{
			name:   "later fields win",
			fields: []Fields{{"repo_id": "base"}, {"repo_id": "extras"}},
			expect: map[string]interface{}{"repo_id": "extras"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := mergeFields(tt.fields...)
			result := make(map[string]interface{})
			for i := 0; i < len(attrs); i += 2 {
				result[attrs[i].(string)] = attrs[i+1]
			}
			assert.Equal(t, tt.expect, result)
		})
	}
}
