// Package urls holds the documentation links printed in troubleshooting hints.
//
// Usage:
//
//	import "github.com/muurk/nacos-tui/internal/urls"
//
//	fmt.Printf("See %s\n", urls.Authentication)
package urls
