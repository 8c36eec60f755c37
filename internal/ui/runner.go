package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// StepStatus represents the current state of a step
type StepStatus int

const (
	StepRunning  StepStatus = iota // Currently executing
	StepComplete                   // Successfully completed
	StepFailed                     // Failed
)

// StepCallback reports progress of one named step
type StepCallback func(name string, status StepStatus)

// Operation is the work a Runner wraps. It reports steps through onStep and
// returns the details shown in the success box.
type Operation func(ctx context.Context, onStep StepCallback) ([]Detail, error)

// RunnerConfig holds configuration for a command execution
type RunnerConfig struct {
	Title           string               // Command title (e.g., "Publish Config")
	Command         string               // Full command (e.g., "nacos-tui config publish")
	Params          []Detail             // Parameters to display in header
	Troubleshooting []string             // Tips shown on failure
	Hints           func(error) []string // Derives tips from the error when Troubleshooting is empty
	Output          io.Writer            // Output writer (default: os.Stdout)
}

// Runner orchestrates the header, step lines, and result box of a one-shot command
type Runner struct {
	config RunnerConfig
	output io.Writer
	width  int
}

// NewRunner creates a new runner
func NewRunner(config RunnerConfig) *Runner {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	return &Runner{
		config: config,
		output: config.Output,
		width:  GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (r *Runner) SetWidth(width int) *Runner {
	r.width = width
	return r
}

// Run executes op with UI updates and returns its error
func (r *Runner) Run(ctx context.Context, op Operation) error {
	start := time.Now()

	header := NewHeader(r.config.Title, r.config.Command, r.config.Params...).SetWidth(r.width)
	_, _ = fmt.Fprintln(r.output, header.Render())
	_, _ = fmt.Fprintln(r.output)

	details, err := op(ctx, r.onStep)
	duration := time.Since(start).Round(time.Millisecond)

	_, _ = fmt.Fprintln(r.output)
	if err != nil {
		tips := r.config.Troubleshooting
		if len(tips) == 0 && r.config.Hints != nil {
			tips = r.config.Hints(err)
		}
		res := NewFailureResult(r.config.Title+" failed", err, tips).SetWidth(r.width)
		_, _ = fmt.Fprintln(r.output, res.Render())
		return err
	}

	res := NewSuccessResult(r.config.Title+" complete", details...).SetWidth(r.width)
	res.AddDetail("Duration", duration.String())
	_, _ = fmt.Fprintln(r.output, res.Render())
	return nil
}

func (r *Runner) onStep(name string, status StepStatus) {
	switch status {
	case StepRunning:
		// Overwritten by the completion line
		_, _ = fmt.Fprint(r.output, "  "+toneWarning.style().Render(StepMarkerRunning+" "+name)+"\r")
	case StepComplete:
		_, _ = fmt.Fprintln(r.output, "  "+toneSuccess.style().Render(StepMarkerComplete+" "+name))
	case StepFailed:
		_, _ = fmt.Fprintln(r.output, "  "+toneFailure.style().Render(FailureMarker+" "+name))
	}
}
