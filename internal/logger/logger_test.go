package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		expectError bool
	}{
		{name: "Debug level", level: "debug"},
		{name: "Warn level", level: "warn"},
		{name: "Invalid level", level: "loud", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Init(tt.level)
			if tt.expectError && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	log.SetLevel(logrus.DebugLevel)
	return &buf
}

func TestLogging(t *testing.T) {
	buf := captureOutput(t)

	tests := []struct {
		name          string
		logFunc       func(string, ...map[string]interface{})
		message       string
		fields        map[string]interface{}
		expectedLevel string
	}{
		{name: "Debug message", logFunc: Debug, message: "Debug test", expectedLevel: "debug"},
		{name: "Info message", logFunc: Info, message: "Info test", expectedLevel: "info"},
		{
			name:          "Warn with fields",
			logFunc:       Warn,
			message:       "Malformed setting",
			fields:        map[string]interface{}{"key": "showTrash"},
			expectedLevel: "warning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			if tt.fields != nil {
				tt.logFunc(tt.message, tt.fields)
			} else {
				tt.logFunc(tt.message)
			}

			output := buf.String()
			if !strings.Contains(output, "level="+tt.expectedLevel) {
				t.Errorf("Expected log level %s, got %s", tt.expectedLevel, output)
			}
			if !strings.Contains(output, tt.message) {
				t.Errorf("Expected message %s, got %s", tt.message, output)
			}
			for k, v := range tt.fields {
				if !strings.Contains(output, k+"="+v.(string)) {
					t.Errorf("Expected field %s=%v in output: %s", k, v, output)
				}
			}
		})
	}
}

func TestError(t *testing.T) {
	buf := captureOutput(t)

	Error("Selection guard failed", errors.New("boom"), map[string]interface{}{"folder": "A"})
	output := buf.String()
	for _, want := range []string{"level=error", "Selection guard failed", "boom", "folder=A"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in %q", want, output)
		}
	}
}

func TestErrorWithoutFields(t *testing.T) {
	buf := captureOutput(t)

	Error("Stylesheet refresh failed", errors.New("disk full"))
	output := buf.String()
	for _, want := range []string{"level=error", "Stylesheet refresh failed", "disk full"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in %q", want, output)
		}
	}
}
