// Package ui renders output for the one-shot nacos-tui commands.
//
// These components follow a "run once and exit" pattern: they print styled
// output with Lipgloss but never take over the terminal. The interactive
// console lives in package tui.
//
// # Components
//
//   - Header: command banner showing the operation and its target
//   - Runner: header, step lines, then a result box around one operation
//   - Result: success and failure boxes
//   - ConfirmDeletion: typed confirmation before destructive commands
//   - NamespaceTable, ConfigTable, HistoryTable: bordered tables
//
// Example:
//
//	runner := ui.NewRunner(ui.RunnerConfig{
//	    Title:   "Delete Namespace",
//	    Command: "nacos-tui namespace delete",
//	    Params:  []ui.Detail{{Key: "Namespace", Value: id}},
//	})
//	err := runner.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) ([]ui.Detail, error) {
//	    onStep("Deleting namespace", ui.StepRunning)
//	    // ... do work ...
//	    onStep("Deleting namespace", ui.StepComplete)
//	    return nil, nil
//	})
//
// # Logging Integration
//
// zap logging is silent unless NACOS_TUI_LOG_LEVEL or --log-level is set,
// so the curated output is displayed cleanly.
package ui
