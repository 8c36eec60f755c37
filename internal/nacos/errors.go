package nacos

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"

	"github.com/muurk/nacos-tui/internal/urls"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeNetwork indicates a transport failure reaching the server
	ErrTypeNetwork ErrorType = iota
	// ErrTypeRequest indicates a non-success status returned by the server
	ErrTypeRequest
	// ErrTypeDecode indicates a response body that does not match the expected schema
	ErrTypeDecode
)

// NetworkErrorSubtype provides more specific network error classification
type NetworkErrorSubtype int

const (
	NetworkErrorGeneral NetworkErrorSubtype = iota
	NetworkErrorTimeout
	NetworkErrorConnectionRefused
	NetworkErrorDNS
	NetworkErrorHostUnreachable
	NetworkErrorNetworkUnreachable
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network error"
	case ErrTypeRequest:
		return "Request failed"
	case ErrTypeDecode:
		return "Decode error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is returned by every Client operation that fails
type Error struct {
	Type           ErrorType           // Category of error
	Op             string              // Operation that failed (e.g. "list namespaces")
	Message        string              // Human-readable error message
	StatusCode     int                 // HTTP status code (request errors only)
	Body           string              // Response body kept as diagnostic text
	Err            error               // Underlying error (if any)
	NetworkSubtype NetworkErrorSubtype // More specific network error type
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	if e.Op != "" {
		b.WriteString(" (" + e.Op + ")")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Body != "" {
		b.WriteString(": ")
		b.WriteString(e.Body)
	}
	if e.Err != nil {
		b.WriteString(fmt.Sprintf(" (caused by: %v)", e.Err))
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// classifyNetworkError narrows a transport error down to a subtype
func classifyNetworkError(err error) (NetworkErrorSubtype, string) {
	if os.IsTimeout(err) {
		return NetworkErrorTimeout, "request timed out"
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return NetworkErrorDNS, fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		switch {
		case errors.Is(opErr.Err, syscall.ECONNREFUSED):
			return NetworkErrorConnectionRefused, "server refused connection"
		case errors.Is(opErr.Err, syscall.EHOSTUNREACH):
			return NetworkErrorHostUnreachable, "host unreachable"
		case errors.Is(opErr.Err, syscall.ENETUNREACH):
			return NetworkErrorNetworkUnreachable, "network unreachable"
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != err {
		return classifyNetworkError(urlErr.Err)
	}

	return NetworkErrorGeneral, "network error occurred"
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(op string, err error) *Error {
	subtype, message := classifyNetworkError(err)
	return &Error{
		Type:           ErrTypeNetwork,
		Op:             op,
		Message:        message,
		Err:            err,
		NetworkSubtype: subtype,
	}
}

// NewRequestError creates an error for a non-success response
func NewRequestError(op string, statusCode int, body string) *Error {
	return &Error{
		Type:       ErrTypeRequest,
		Op:         op,
		Message:    fmt.Sprintf("status %d", statusCode),
		StatusCode: statusCode,
		Body:       strings.TrimSpace(body),
	}
}

// NewDecodeError creates an error for a response that could not be parsed
func NewDecodeError(op string, err error) *Error {
	return &Error{
		Type:    ErrTypeDecode,
		Op:      op,
		Message: "unexpected response body",
		Err:     err,
	}
}

// NewRejectedError creates a request error for a call the server answered
// with a success status but a false result
func NewRejectedError(op string) *Error {
	return &Error{
		Type:       ErrTypeRequest,
		Op:         op,
		Message:    "rejected by server",
		StatusCode: http.StatusOK,
	}
}

func asError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsNetworkError checks if an error is a transport error
func IsNetworkError(err error) bool {
	e, ok := asError(err)
	return ok && e.Type == ErrTypeNetwork
}

// IsRequestError checks if an error is a non-success response
func IsRequestError(err error) bool {
	e, ok := asError(err)
	return ok && e.Type == ErrTypeRequest
}

// IsDecodeError checks if an error is a decode error
func IsDecodeError(err error) bool {
	e, ok := asError(err)
	return ok && e.Type == ErrTypeDecode
}

// IsAuthError reports whether the server refused the credentials or token.
// An expired session token surfaces this way since tokens are never refreshed.
func IsAuthError(err error) bool {
	e, ok := asError(err)
	if !ok || e.Type != ErrTypeRequest {
		return false
	}
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// ShortMessage returns a concise, user-friendly error message
func ShortMessage(err error) string {
	if err == nil {
		return ""
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	e, ok := asError(err)
	if !ok {
		return err.Error()
	}

	switch e.Type {
	case ErrTypeNetwork:
		switch e.NetworkSubtype {
		case NetworkErrorTimeout:
			return "Server not responding (timeout)"
		case NetworkErrorConnectionRefused:
			return "Server refused connection - is it running?"
		case NetworkErrorDNS:
			return "Cannot resolve server hostname"
		case NetworkErrorHostUnreachable, NetworkErrorNetworkUnreachable:
			return "Server unreachable - check network connection"
		default:
			return "Network error - check connection"
		}
	case ErrTypeRequest:
		if IsAuthError(err) {
			return "Not authorized - session may have expired, restart to log in again"
		}
		if e.Body != "" {
			return fmt.Sprintf("%s failed (HTTP %d): %s", e.Op, e.StatusCode, firstLine(e.Body))
		}
		return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
	case ErrTypeDecode:
		return fmt.Sprintf("%s: unexpected response from server", e.Op)
	default:
		return e.Message
	}
}

// TroubleshootingHint returns user-friendly troubleshooting advice for an error
func TroubleshootingHint(err error) []string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return []string{
			"Fix the " + verr.Field + " value and retry",
			"See " + urls.Namespaces + " for naming rules",
		}
	}

	e, ok := asError(err)
	if !ok {
		return nil
	}

	switch e.Type {
	case ErrTypeNetwork:
		hint := []string{
			"Check that the server URL is correct (nacos.url / --url)",
			"Verify the server is running and reachable from this machine",
		}
		if e.NetworkSubtype == NetworkErrorTimeout {
			hint = append(hint, "Try increasing nacos.timeout")
		}
		return append(hint, "See "+urls.Deployment)

	case ErrTypeRequest:
		if IsAuthError(err) {
			return []string{
				"Check the username and password (nacos.username / nacos.password)",
				"Confirm the account has the required role",
				"See " + urls.Authentication,
			}
		}
		if e.StatusCode >= 500 {
			return []string{
				fmt.Sprintf("The server returned HTTP %d", e.StatusCode),
				"Check the server logs for details",
			}
		}
		return []string{"Check the request parameters", "See " + urls.OpenAPI}

	case ErrTypeDecode:
		return []string{
			"The server response did not match the expected format",
			"Check that the server version supports the v1 console API",
			"See " + urls.OpenAPI,
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
