package nacos

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// NamespaceKind distinguishes the built-in public namespace from user-created ones
type NamespaceKind int

const (
	// KindDefault is the built-in public namespace (wire type 0)
	KindDefault NamespaceKind = iota
	// KindUserCreated is any namespace created through the console or API
	KindUserCreated
)

// String returns the display name of the kind
func (k NamespaceKind) String() string {
	if k == KindDefault {
		return "default"
	}
	return "custom"
}

// DefaultQuota is the per-namespace config quota the server assigns
// when none is configured.
const DefaultQuota = 200

// Namespace is a logical partition of configuration entries.
// An empty ID denotes the public namespace.
type Namespace struct {
	ID          string        `json:"namespace" yaml:"id"`
	Name        string        `json:"namespaceShowName" yaml:"name"`
	Description *string       `json:"namespaceDesc,omitempty" yaml:"description,omitempty"`
	Quota       int           `json:"quota" yaml:"quota"`
	ConfigCount int           `json:"configCount" yaml:"configCount"`
	Kind        NamespaceKind `json:"-" yaml:"kind"`
}

// DescriptionText returns the description or an empty string when unset
func (n Namespace) DescriptionText() string {
	if n.Description == nil {
		return ""
	}
	return *n.Description
}

// IsDefault reports whether n is the built-in public namespace
func (n Namespace) IsDefault() bool {
	return n.Kind == KindDefault
}

// namespaceWire mirrors the server's namespace object
type namespaceWire struct {
	Namespace         string  `json:"namespace"`
	NamespaceShowName string  `json:"namespaceShowName"`
	NamespaceDesc     *string `json:"namespaceDesc"`
	Quota             int     `json:"quota"`
	ConfigCount       int     `json:"configCount"`
	Type              int     `json:"type"`
}

func (w namespaceWire) toNamespace() Namespace {
	kind := KindUserCreated
	if w.Type == 0 {
		kind = KindDefault
	}
	return Namespace{
		ID:          w.Namespace,
		Name:        w.NamespaceShowName,
		Description: w.NamespaceDesc,
		Quota:       w.Quota,
		ConfigCount: w.ConfigCount,
		Kind:        kind,
	}
}

// ConfigEntry is one configuration item of a namespace
type ConfigEntry struct {
	ID           string    `json:"id" yaml:"id"`
	DataID       string    `json:"dataId" yaml:"dataId"`
	Group        string    `json:"group" yaml:"group"`
	Content      *string   `json:"content,omitempty" yaml:"content,omitempty"`
	MD5          string    `json:"md5,omitempty" yaml:"md5,omitempty"`
	Type         string    `json:"type,omitempty" yaml:"type,omitempty"`
	Tenant       string    `json:"tenant,omitempty" yaml:"tenant,omitempty"`
	AppName      string    `json:"appName,omitempty" yaml:"appName,omitempty"`
	LastModified time.Time `json:"lastModified,omitempty" yaml:"lastModified,omitempty"`
}

// configWire mirrors the server's config object.
// id arrives as either a number or a string depending on the server version.
type configWire struct {
	ID           flexString `json:"id"`
	DataID       string     `json:"dataId"`
	Group        string     `json:"group"`
	Content      *string    `json:"content"`
	MD5          string     `json:"md5"`
	Type         string     `json:"type"`
	Tenant       string     `json:"tenant"`
	AppName      string     `json:"appName"`
	LastModified int64      `json:"lastModified"`
}

func (w configWire) toConfigEntry() ConfigEntry {
	entry := ConfigEntry{
		ID:      string(w.ID),
		DataID:  w.DataID,
		Group:   w.Group,
		Content: w.Content,
		MD5:     w.MD5,
		Type:    w.Type,
		Tenant:  w.Tenant,
		AppName: w.AppName,
	}
	if w.LastModified > 0 {
		entry.LastModified = time.UnixMilli(w.LastModified)
	}
	return entry
}

// flexString accepts a JSON string or number
type flexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id is neither string nor number: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("invalid numeric id %q: %w", n, err)
	}
	*f = flexString(n.String())
	return nil
}

// envelope is the {code, message, data} wrapper used by the console API
type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// LoginResult is the outcome of a successful login
type LoginResult struct {
	AccessToken string `json:"accessToken"`
	TokenTTL    int64  `json:"tokenTtl"`
	GlobalAdmin bool   `json:"globalAdmin"`
	Username    string `json:"username"`
}

// TTL returns the token lifetime as a duration
func (r LoginResult) TTL() time.Duration {
	return time.Duration(r.TokenTTL) * time.Second
}
