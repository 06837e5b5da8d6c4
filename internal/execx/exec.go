// Package execx runs external commands (git, mostly) with clear UX:
// context cancellation, captured output with exit codes, and an optional
// progress spinner for longer operations.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Executor runs external commands.
type Executor struct {
	stdout io.Writer
	stderr io.Writer
	env    []string
	dir    string

	// For mocking in tests
	commandFunc func(name string, args ...string) *exec.Cmd
}

// Options configures command execution.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    []string // Additional environment variables
	Dir    string   // Working directory
}

// NewExecutor creates an executor with sensible defaults.
func NewExecutor(opts *Options) *Executor {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	return &Executor{
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		env:         opts.Env,
		dir:         opts.Dir,
		commandFunc: exec.Command, // Can be mocked for tests
	}
}

// Run executes a command, streaming its output to the executor's writers.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	cmd := e.commandFunc(name, args...)

	if e.dir != "" {
		cmd.Dir = e.dir
	}
	if len(e.env) > 0 {
		cmd.Env = append(os.Environ(), e.env...)
	}
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Start(); err != nil {
		if isCommandNotFound(err) {
			return enhanceError(err, name)
		}
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		return fmt.Errorf("%s cancelled: %w", name, ctx.Err())
	case err := <-errCh:
		if err != nil {
			if isCommandNotFound(err) {
				return enhanceError(err, name)
			}
			return fmt.Errorf("%s failed: %w", name, err)
		}
		return nil
	}
}

// CaptureResult reports a finished command's captured output and exit code.
type CaptureResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunCapture executes a command and captures its output instead of
// streaming it. A non-zero exit is reported in the result and in the
// returned error; callers that treat the command as optional can inspect
// the result and swallow the error.
func (e *Executor) RunCapture(ctx context.Context, name string, args ...string) (*CaptureResult, error) {
	var stdout, stderr bytes.Buffer

	capture := &Executor{
		stdout:      &stdout,
		stderr:      &stderr,
		env:         e.env,
		dir:         e.dir,
		commandFunc: e.commandFunc,
	}
	err := capture.Run(ctx, name, args...)

	result := &CaptureResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
	}
	return result, err
}

// RunWithSpinner runs a command with a progress spinner. Output is captured
// rather than streamed; on failure the returned error reports the command's
// exit code and stderr.
func (e *Executor) RunWithSpinner(ctx context.Context, message string, name string, args ...string) error {
	type outcome struct {
		result *CaptureResult
		err    error
	}

	done := make(chan outcome, 1)
	go func() {
		result, err := e.RunCapture(ctx, name, args...)
		done <- outcome{result: result, err: err}
	}()

	m := newSpinnerModel(message)
	p := tea.NewProgram(m, tea.WithOutput(e.stderr))

	go func() {
		if _, err := p.Run(); err != nil {
			// Silently ignore spinner errors
			_ = err
		}
	}()

	captured := <-done

	p.Send(spinnerDoneMsg{err: captured.err})
	// Give spinner time to render final state
	time.Sleep(50 * time.Millisecond)
	p.Quit()

	return captureError(name, captured.result, captured.err)
}

// captureError folds a captured command failure into a single error naming
// the exit code and the command's stderr. A nil err passes through; errors
// without an exit code (start failures, cancellation) are returned as-is.
func captureError(name string, result *CaptureResult, err error) error {
	if err == nil {
		return nil
	}
	if result == nil || result.ExitCode < 0 {
		return err
	}
	if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
		return fmt.Errorf("%s exited with code %d: %s", name, result.ExitCode, stderr)
	}
	return fmt.Errorf("%s exited with code %d", name, result.ExitCode)
}

// spinnerModel is the bubbletea model for the spinner
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		if m.err != nil {
			return fmt.Sprintf("❌ %s\n", m.message)
		}
		return fmt.Sprintf("✅ %s\n", m.message)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

// isCommandNotFound checks if an error indicates a command was not found
func isCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, exec.ErrNotFound) ||
		strings.Contains(err.Error(), "executable file not found") ||
		strings.Contains(err.Error(), "command not found")
}

// enhanceError adds a helpful message for missing commands
func enhanceError(err error, cmd string) error {
	return fmt.Errorf("%w\n💡 Command '%s' not found. Please install it and try again", err, cmd)
}
