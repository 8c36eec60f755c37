package nacos

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// errMissingToken is returned when a login response carries no token
var errMissingToken = errors.New("login response has no accessToken")

// ValidationError reports input the server would reject.
// It is returned before any request is made.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// NewValidationError creates a validation error for field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

const (
	// MaxNamespaceIDLength is the longest custom namespace id the server accepts
	MaxNamespaceIDLength = 128

	// MaxNamespaceNameLength is the longest namespace display name the server accepts
	MaxNamespaceNameLength = 128

	// MaxDataIDLength bounds dataId and group
	MaxDataIDLength = 255
)

var (
	namespaceIDPattern = regexp.MustCompile(`^[\w-]+$`)
	dataIDPattern      = regexp.MustCompile(`^[\w.:-]+$`)
)

// namespaceNameForbidden lists characters the console refuses in display names
const namespaceNameForbidden = `@#$%^&*`

// ValidateNamespaceID validates a custom namespace id.
// Empty is valid: the id is generated in that case.
func ValidateNamespaceID(id string) error {
	if id == "" {
		return nil
	}
	if utf8.RuneCountInString(id) > MaxNamespaceIDLength {
		return NewValidationError("id", fmt.Sprintf("namespace id too long (max %d chars)", MaxNamespaceIDLength))
	}
	if !namespaceIDPattern.MatchString(id) {
		return NewValidationError("id", "namespace id may only contain letters, digits, '_' and '-'")
	}
	return nil
}

// ValidateNamespaceName validates a namespace display name.
// Names are required.
func ValidateNamespaceName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name", "namespace name is required")
	}
	if utf8.RuneCountInString(name) > MaxNamespaceNameLength {
		return NewValidationError("name", fmt.Sprintf("namespace name too long (max %d chars)", MaxNamespaceNameLength))
	}
	if strings.ContainsAny(name, namespaceNameForbidden) {
		return NewValidationError("name", fmt.Sprintf("namespace name may not contain any of %s", namespaceNameForbidden))
	}
	return nil
}

// ValidateDataID validates a config dataId or group
func ValidateDataID(field, value string) error {
	if value == "" {
		return NewValidationError(field, field+" is required")
	}
	if len(value) > MaxDataIDLength {
		return NewValidationError(field, fmt.Sprintf("%s too long (max %d chars)", field, MaxDataIDLength))
	}
	if !dataIDPattern.MatchString(value) {
		return NewValidationError(field, field+" may only contain letters, digits and any of '_-.:'")
	}
	return nil
}

// ValidateConfigType validates a config content format
func ValidateConfigType(configType string) error {
	if configType == "" {
		return nil
	}
	for _, t := range ConfigTypes {
		if t == configType {
			return nil
		}
	}
	return NewValidationError("type", fmt.Sprintf("unknown config type %q (want one of %s)", configType, strings.Join(ConfigTypes, ", ")))
}

// ConfigTypes lists the content formats the server knows about
var ConfigTypes = []string{"text", "json", "xml", "yaml", "html", "properties", "toml"}
