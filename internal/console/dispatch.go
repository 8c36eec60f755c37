package console

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"

	"github.com/muurk/nacos-tui/internal/logging"
	"github.com/muurk/nacos-tui/internal/nacos"
)

// Remote is the part of the client the dispatcher drives
type Remote interface {
	ListNamespaces(ctx context.Context, token string) ([]nacos.Namespace, error)
	CreateNamespace(ctx context.Context, token, id, name, desc string) (bool, error)
	UpdateNamespace(ctx context.Context, token, id, name, desc string) (bool, error)
	DeleteNamespace(ctx context.Context, token, id string) (bool, error)
	ListConfigs(ctx context.Context, token, namespaceID string) ([]nacos.ConfigEntry, error)
	GetConfig(ctx context.Context, token, namespaceID, dataID, group string) (string, error)
}

// Recorder receives the outcome of every mutating intent
type Recorder interface {
	RecordIntent(ctx context.Context, intent Intent, err error)
}

// Dispatcher runs intents against the remote service.
// Each intent is attempted once; the timeout bounds every call.
type Dispatcher struct {
	Remote   Remote
	Token    string
	Timeout  time.Duration
	Recorder Recorder

	// Clipboard writes text to the system clipboard
	Clipboard func(string) error
}

// NewDispatcher creates a dispatcher that authenticates with token
func NewDispatcher(remote Remote, token string, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		Remote:    remote,
		Token:     token,
		Timeout:   timeout,
		Clipboard: clipboard.WriteAll,
	}
}

// Run executes intent and returns its result. It never panics on a nil intent.
func (d *Dispatcher) Run(ctx context.Context, intent Intent) Result {
	if intent == nil {
		return Result{Err: fmt.Errorf("no intent")}
	}
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	res := d.run(ctx, intent)
	res.Intent = intent

	logging.LogIntent(intent.Kind(), intent.Target(), res.Err)
	if intent.Mutating() && d.Recorder != nil {
		d.Recorder.RecordIntent(ctx, intent, res.Err)
	}
	return res
}

func (d *Dispatcher) run(ctx context.Context, intent Intent) Result {
	switch in := intent.(type) {
	case CreateNamespace:
		ok, err := d.Remote.CreateNamespace(ctx, d.Token, in.ID, in.Name, deref(in.Description))
		return Result{Err: nacos.MustSucceed("create namespace", ok, err)}

	case UpdateNamespace:
		ok, err := d.Remote.UpdateNamespace(ctx, d.Token, in.ID, in.Name, deref(in.Description))
		return Result{Err: nacos.MustSucceed("update namespace", ok, err)}

	case DeleteNamespace:
		ok, err := d.Remote.DeleteNamespace(ctx, d.Token, in.ID)
		return Result{Err: nacos.MustSucceed("delete namespace", ok, err)}

	case ListNamespaces:
		namespaces, err := d.Remote.ListNamespaces(ctx, d.Token)
		return Result{Namespaces: namespaces, Err: err}

	case ListConfigs:
		configs, err := d.Remote.ListConfigs(ctx, d.Token, in.NamespaceID)
		return Result{Configs: configs, Err: err}

	case GetConfig:
		content, err := d.Remote.GetConfig(ctx, d.Token, in.NamespaceID, in.Entry.DataID, in.Entry.Group)
		return Result{Content: content, Err: err}

	case CopyContent:
		if d.Clipboard == nil {
			return Result{Err: fmt.Errorf("clipboard unavailable")}
		}
		if err := d.Clipboard(in.Content); err != nil {
			return Result{Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return Result{}
	}
	return Result{Err: fmt.Errorf("unsupported intent %s", intent.Kind())}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
