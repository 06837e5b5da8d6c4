package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSuccess(t *testing.T) {
	out := captureOutput(func() {
		Success("Test message")
	})

	if !strings.Contains(out, "Test message") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	out := captureOutput(func() {
		Error("Error message")
	})

	if !strings.Contains(out, "❌") {
		t.Error("Error output should contain X emoji")
	}
	if !strings.Contains(out, "Error message") {
		t.Error("Error output should contain the message")
	}
}

func TestWarn(t *testing.T) {
	out := captureOutput(func() {
		Warn("Warning message")
	})

	if !strings.Contains(out, "Warning message") {
		t.Error("Warn output should contain the message")
	}
}

func TestStep(t *testing.T) {
	out := captureOutput(func() {
		Step("Step message")
	})

	if !strings.Contains(out, "   ") {
		t.Error("Step output should contain indentation")
	}
	if !strings.Contains(out, "Step message") {
		t.Error("Step output should contain the message")
	}
}

func TestVerbose(t *testing.T) {
	// Test with verbose mode off (default)
	out := captureOutput(func() {
		Verbose("Debug message")
	})

	if out != "" {
		t.Error("Verbose output should be empty when verbose mode is off")
	}

	// Test with verbose mode on
	SetVerbose(true)
	out = captureOutput(func() {
		Verbose("Debug message")
	})

	if !strings.Contains(out, "Debug message") {
		t.Error("Verbose output should contain the message when enabled")
	}

	// Clean up
	SetVerbose(false)
}
