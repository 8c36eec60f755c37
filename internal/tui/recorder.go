package tui

import (
	"context"

	"go.uber.org/zap"

	"github.com/muurk/nacos-tui/internal/console"
	"github.com/muurk/nacos-tui/internal/history"
	"github.com/muurk/nacos-tui/internal/logging"
)

// HistoryRecorder writes the outcome of mutating intents to the action history
type HistoryRecorder struct {
	Store *history.Store
}

// RecordIntent implements console.Recorder. A failing store is logged and ignored.
func (r HistoryRecorder) RecordIntent(ctx context.Context, intent console.Intent, err error) {
	if r.Store == nil {
		return
	}
	e := history.Entry{
		Source:  history.SourceTUI,
		Action:  intent.Kind(),
		Target:  intent.Target(),
		Success: err == nil,
	}
	if err != nil {
		e.Error = err.Error()
	}
	// Record outlives the intent's own deadline
	if recErr := r.Store.Record(context.WithoutCancel(ctx), e); recErr != nil {
		logging.Warn("Failed to record action", zap.String("action", e.Action), zap.Error(recErr))
	}
}
