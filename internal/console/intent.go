package console

import (
	"github.com/muurk/nacos-tui/internal/nacos"
)

// Intent is a remote action requested by a key event.
// The machine only describes it; the dispatcher carries it out.
type Intent interface {
	// Kind is a short machine-readable name used in logs and history
	Kind() string
	// Target names the object acted upon
	Target() string
	// Mutating reports whether the intent changes server state
	Mutating() bool
}

// CreateNamespace asks for a new namespace
type CreateNamespace struct {
	ID          string
	Name        string
	Description *string
}

func (i CreateNamespace) Kind() string   { return "create-namespace" }
func (i CreateNamespace) Target() string { return i.ID }
func (i CreateNamespace) Mutating() bool { return true }

// UpdateNamespace asks to rename a namespace and replace its description
type UpdateNamespace struct {
	ID          string
	Name        string
	Description *string
}

func (i UpdateNamespace) Kind() string   { return "update-namespace" }
func (i UpdateNamespace) Target() string { return i.ID }
func (i UpdateNamespace) Mutating() bool { return true }

// DeleteNamespace asks to remove a namespace
type DeleteNamespace struct {
	ID string
}

func (i DeleteNamespace) Kind() string   { return "delete-namespace" }
func (i DeleteNamespace) Target() string { return i.ID }
func (i DeleteNamespace) Mutating() bool { return true }

// ListNamespaces asks for a fresh namespace list
type ListNamespaces struct{}

func (i ListNamespaces) Kind() string   { return "list-namespaces" }
func (i ListNamespaces) Target() string { return "" }
func (i ListNamespaces) Mutating() bool { return false }

// ListConfigs asks for the entries of the namespace shown on tab Tab
type ListConfigs struct {
	Tab         int
	NamespaceID string
}

func (i ListConfigs) Kind() string   { return "list-configs" }
func (i ListConfigs) Target() string { return i.NamespaceID }
func (i ListConfigs) Mutating() bool { return false }

// GetConfig asks for the content of one entry
type GetConfig struct {
	NamespaceID string
	Entry       nacos.ConfigEntry
}

func (i GetConfig) Kind() string   { return "get-config" }
func (i GetConfig) Target() string { return i.Entry.DataID }
func (i GetConfig) Mutating() bool { return false }

// CopyContent asks to put viewer content on the system clipboard
type CopyContent struct {
	Content string
}

func (i CopyContent) Kind() string   { return "copy-content" }
func (i CopyContent) Target() string { return "" }
func (i CopyContent) Mutating() bool { return false }

// Result is the outcome of running an intent
type Result struct {
	Intent     Intent
	Namespaces []nacos.Namespace
	Configs    []nacos.ConfigEntry
	Content    string
	Err        error
}
