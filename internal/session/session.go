package session

import (
	"time"

	"github.com/muurk/nacos-tui/internal/nacos"
)

// Session is the state of one logged-in console run.
// It is created once by Bootstrap and then mutated only by the console
// state machine after a remote call has completed.
type Session struct {
	// BaseURL is the server root the session was opened against
	BaseURL string

	// AccessToken is set at login and never refreshed
	AccessToken string

	// Username is the account the token belongs to
	Username string

	// TokenTTL is the token lifetime reported at login
	TokenTTL time.Duration

	// GlobalAdmin reports whether the account has the admin role
	GlobalAdmin bool

	// LoggedInAt is when the token was issued
	LoggedInAt time.Time

	// Namespaces is the local namespace list, the single rendering source
	Namespaces []nacos.Namespace

	// Configs holds the entries of ConfigNamespace only
	Configs []nacos.ConfigEntry

	// ConfigNamespace is the namespace id Configs was fetched for
	ConfigNamespace string

	// ConfigsStale is set when the config cache was dropped and nothing has
	// been fetched since. ConfigNamespace is meaningless while it is set.
	ConfigsStale bool
}

// TokenExpiresAt returns when the access token stops being accepted.
// The zero time means the server did not report a lifetime.
func (s *Session) TokenExpiresAt() time.Time {
	if s.TokenTTL <= 0 {
		return time.Time{}
	}
	return s.LoggedInAt.Add(s.TokenTTL)
}

// NamespaceIndex returns the position of namespace id, or -1
func (s *Session) NamespaceIndex(id string) int {
	for i, ns := range s.Namespaces {
		if ns.ID == id {
			return i
		}
	}
	return -1
}

// ReplaceNamespaces swaps in a freshly listed namespace list
func (s *Session) ReplaceNamespaces(namespaces []nacos.Namespace) {
	s.Namespaces = namespaces
}

// AppendNamespace adds a namespace created during this session
func (s *Session) AppendNamespace(ns nacos.Namespace) {
	s.Namespaces = append(s.Namespaces, ns)
}

// UpdateNamespace renames namespace id in place. It reports whether id was found.
func (s *Session) UpdateNamespace(id, name string, description *string) bool {
	i := s.NamespaceIndex(id)
	if i < 0 {
		return false
	}
	s.Namespaces[i].Name = name
	s.Namespaces[i].Description = description
	return true
}

// RemoveNamespace drops namespace id. It reports whether id was found.
// Cached configs of a removed namespace are dropped with it.
func (s *Session) RemoveNamespace(id string) bool {
	i := s.NamespaceIndex(id)
	if i < 0 {
		return false
	}
	s.Namespaces = append(s.Namespaces[:i:i], s.Namespaces[i+1:]...)
	if s.ConfigNamespace == id {
		s.DropConfigs()
	}
	return true
}

// DropConfigs empties the config cache and marks it stale
func (s *Session) DropConfigs() {
	s.Configs = nil
	s.ConfigsStale = true
}

// ReplaceConfigs swaps the config cache for the entries of namespaceID
func (s *Session) ReplaceConfigs(namespaceID string, entries []nacos.ConfigEntry) {
	s.ConfigNamespace = namespaceID
	s.Configs = entries
	s.ConfigsStale = false
}
