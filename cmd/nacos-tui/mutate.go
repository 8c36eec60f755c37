package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/muurk/nacos-tui/internal/nacos"
	"github.com/muurk/nacos-tui/internal/ui"
)

// mutation describes one write against the server
type mutation struct {
	title     string
	action    string
	namespace string
	target    string
	params    []ui.Detail
	step      string
	result    any
	run       func(ctx context.Context, r *remote) error
}

// reportedError marks an error already shown in a result box
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// alreadyReported reports whether err was shown to the user already
func alreadyReported(err error) bool {
	var re reportedError
	return errors.As(err, &re)
}

// runMutation logs in, runs m and records it in the history. The table format
// shows progress through a ui.Runner; other formats print m.result on success.
func runMutation(cmd *cobra.Command, m mutation) error {
	ctx := cmd.Context()
	r, err := connect(ctx)
	if err != nil {
		return err
	}
	defer r.Close()

	if outputFormat != formatTable {
		err := m.run(ctx, r)
		r.record(ctx, m.action, m.namespace, m.target, err)
		if err != nil {
			return err
		}
		return printOutput(cmd.OutOrStdout(), m.result, nil)
	}

	runner := ui.NewRunner(ui.RunnerConfig{
		Title:   m.title,
		Command: cmd.CommandPath(),
		Params:  m.params,
		Hints:   nacos.TroubleshootingHint,
		Output:  cmd.OutOrStdout(),
	})
	err = runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) ([]ui.Detail, error) {
		onStep(m.step, ui.StepRunning)
		err := m.run(ctx, r)
		r.record(ctx, m.action, m.namespace, m.target, err)
		if err != nil {
			onStep(m.step, ui.StepFailed)
			return nil, err
		}
		onStep(m.step, ui.StepComplete)
		return m.params, nil
	})
	if err != nil {
		return reportedError{err}
	}
	return nil
}
