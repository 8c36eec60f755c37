package console

import (
	"fmt"

	"github.com/muurk/nacos-tui/internal/nacos"
	"github.com/muurk/nacos-tui/internal/session"
)

// Apply feeds the outcome of the pending intent back into the machine.
// Session caches change only when res carries no error. On error the screen
// stays where it is and Err describes the failure.
//
// A non-nil return is a follow-up intent, already marked pending, that the
// caller runs like one returned by HandleKey.
func (m *Machine) Apply(sess *session.Session, res Result) Intent {
	m.Pending = nil
	if m.Screen == ScreenQuitting {
		return nil
	}

	if res.Err != nil {
		m.Err = nacos.ShortMessage(res.Err)
		m.Status = ""
		return nil
	}
	m.Err = ""

	switch in := res.Intent.(type) {
	case CreateNamespace:
		sess.AppendNamespace(nacos.Namespace{
			ID:          in.ID,
			Name:        in.Name,
			Description: in.Description,
			Quota:       nacos.DefaultQuota,
			Kind:        nacos.KindUserCreated,
		})
		m.closeForm()
		m.Status = fmt.Sprintf("Namespace %s created", in.Name)

	case UpdateNamespace:
		sess.UpdateNamespace(in.ID, in.Name, in.Description)
		m.closeForm()
		m.Status = fmt.Sprintf("Namespace %s updated", in.Name)

	case DeleteNamespace:
		sess.RemoveNamespace(in.ID)
		m.NamespaceLine = clamp(m.NamespaceLine, len(sess.Namespaces))
		m.Status = fmt.Sprintf("Namespace %s deleted", in.ID)
		return m.syncConfigTab(sess)

	case ListNamespaces:
		sess.ReplaceNamespaces(res.Namespaces)
		m.NamespaceLine = clamp(m.NamespaceLine, len(sess.Namespaces))
		m.Status = fmt.Sprintf("%d namespaces", len(sess.Namespaces))
		return m.syncConfigTab(sess)

	case ListConfigs:
		sess.ReplaceConfigs(in.NamespaceID, res.Configs)
		m.ConfigTab = in.Tab
		m.ConfigLine = 0

	case GetConfig:
		m.Viewer = &ConfigDocument{
			NamespaceID: in.NamespaceID,
			Entry:       in.Entry,
			Content:     res.Content,
		}
		m.Screen = ScreenConfigView

	case CopyContent:
		m.Status = fmt.Sprintf("Copied %d bytes to clipboard", len(in.Content))
	}
	return nil
}

// syncConfigTab points ConfigTab back at the namespace the configs belong to.
// When that namespace is gone the config cache is dropped and the configs of
// the first namespace are requested. The status message is kept.
func (m *Machine) syncConfigTab(sess *session.Session) Intent {
	if i := sess.NamespaceIndex(sess.ConfigNamespace); i >= 0 {
		m.ConfigTab = i
		return nil
	}
	m.ConfigTab = 0
	m.ConfigLine = 0
	sess.DropConfigs()
	if len(sess.Namespaces) == 0 {
		return nil
	}
	m.Pending = ListConfigs{Tab: 0, NamespaceID: sess.Namespaces[0].ID}
	return m.Pending
}
