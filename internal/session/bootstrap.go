package session

import (
	"context"
	"fmt"
	"time"

	"github.com/muurk/nacos-tui/internal/logging"
	"github.com/muurk/nacos-tui/internal/nacos"
	"go.uber.org/zap"
)

// Remote is the part of the client needed to open a session
type Remote interface {
	Login(ctx context.Context, username, password string) (*nacos.LoginResult, error)
	ListNamespaces(ctx context.Context, token string) ([]nacos.Namespace, error)
	ListConfigs(ctx context.Context, token, namespaceID string) ([]nacos.ConfigEntry, error)
}

// Credentials identify the account to log in with
type Credentials struct {
	Username string
	Password string
}

// Bootstrap opens a session with exactly one login, one namespace listing and
// one config listing for the first namespace. Any failure is returned wrapped
// and leaves no session behind.
func Bootstrap(ctx context.Context, remote Remote, baseURL string, creds Credentials) (*Session, error) {
	login, err := remote.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		return nil, fmt.Errorf("login as %s: %w", creds.Username, err)
	}

	sess := &Session{
		BaseURL:     baseURL,
		AccessToken: login.AccessToken,
		Username:    login.Username,
		TokenTTL:    login.TTL(),
		GlobalAdmin: login.GlobalAdmin,
		LoggedInAt:  time.Now(),
	}
	logging.Info("Logged in",
		zap.String("url", baseURL),
		zap.String("username", sess.Username),
		zap.Duration("token_ttl", sess.TokenTTL),
	)

	namespaces, err := remote.ListNamespaces(ctx, sess.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("list namespaces: %w", err)
	}
	sess.ReplaceNamespaces(namespaces)

	if len(namespaces) > 0 {
		first := namespaces[0].ID
		configs, err := remote.ListConfigs(ctx, sess.AccessToken, first)
		if err != nil {
			return nil, fmt.Errorf("list configs of %s: %w", namespaces[0].DisplayID(), err)
		}
		sess.ReplaceConfigs(first, configs)
	}

	logging.Debug("Session ready",
		zap.Int("namespaces", len(sess.Namespaces)),
		zap.Int("configs", len(sess.Configs)),
	)
	return sess, nil
}
