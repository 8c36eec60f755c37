package console

// Screen represents the current active screen of the console
type Screen string

const (
	ScreenMain                   Screen = "main"
	ScreenNamespaceAdd           Screen = "namespace-add"
	ScreenNamespaceEdit          Screen = "namespace-edit"
	ScreenNamespaceDeleteConfirm Screen = "namespace-delete-confirm"
	ScreenConfigView             Screen = "config-view"
	ScreenQuitting               Screen = "quitting"
)

// Menu is the section selected on the main screen
type Menu int

const (
	MenuConfig Menu = iota
	MenuService
	MenuNamespace
)

// Menus lists the menu sections in display order
var Menus = []Menu{MenuConfig, MenuService, MenuNamespace}

// String returns the menu title
func (m Menu) String() string {
	switch m {
	case MenuConfig:
		return "Config"
	case MenuService:
		return "Service"
	case MenuNamespace:
		return "Namespace"
	default:
		return "Unknown"
	}
}
