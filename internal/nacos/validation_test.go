package nacos

import (
	"strings"
	"testing"
)

func TestValidateNamespaceID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"", false},
		{"dev", false},
		{"team_a-01", false},
		{"8fa56574-e685-495c-833e-42b525b35c1a", false},
		{"has space", true},
		{"dot.ted", true},
		{"slash/y", true},
		{strings.Repeat("a", MaxNamespaceIDLength), false},
		{strings.Repeat("a", MaxNamespaceIDLength+1), true},
	}

	for _, tt := range tests {
		err := ValidateNamespaceID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateNamespaceID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
		if err != nil && !IsValidationError(err) {
			t.Errorf("ValidateNamespaceID(%q) returned %T, want *ValidationError", tt.id, err)
		}
	}
}

func TestValidateNamespaceName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"Development", false},
		{"开发环境", false},
		{"with spaces ok", false},
		{"", true},
		{"   ", true},
		{"bad#name", true},
		{"a@b", true},
		{strings.Repeat("n", MaxNamespaceNameLength+1), true},
	}

	for _, tt := range tests {
		err := ValidateNamespaceName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateNamespaceName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateDataID(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"app.yaml", false},
		{"com.example:service-1", false},
		{"", true},
		{"has space", true},
		{"semi;colon", true},
	}

	for _, tt := range tests {
		err := ValidateDataID("dataId", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDataID(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestValidateConfigType(t *testing.T) {
	for _, ct := range append([]string{""}, ConfigTypes...) {
		if err := ValidateConfigType(ct); err != nil {
			t.Errorf("ValidateConfigType(%q) error = %v", ct, err)
		}
	}
	if err := ValidateConfigType("ini"); err == nil {
		t.Error("ValidateConfigType(ini) expected error")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("name", "namespace name is required")
	if err.Error() != "name: namespace name is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFormatters(t *testing.T) {
	desc := "dev env"
	ns := Namespace{ID: "dev", Name: "Development", Description: &desc, Quota: 200, ConfigCount: 3, Kind: KindUserCreated}

	if got := ns.Summary(); got != "Development (dev) 3/200 configs" {
		t.Errorf("Summary() = %q", got)
	}
	details := ns.FormatDetails()
	for _, want := range []string{"ID:          dev", "Description: dev env", "Kind:        custom"} {
		if !strings.Contains(details, want) {
			t.Errorf("FormatDetails() missing %q:\n%s", want, details)
		}
	}

	table := FormatNamespaceTable([]Namespace{{Name: "public", Quota: 200}, ns})
	if lines := strings.Split(strings.TrimRight(table, "\n"), "\n"); len(lines) != 3 {
		t.Errorf("table has %d lines, want 3:\n%s", len(lines), table)
	}
	if !strings.Contains(table, PublicNamespaceLabel) {
		t.Errorf("table should label the public namespace:\n%s", table)
	}

	entry := ConfigEntry{DataID: "app.yaml", Group: "DEFAULT_GROUP"}
	if got := entry.Summary(); got != "app.yaml [DEFAULT_GROUP] text" {
		t.Errorf("Summary() = %q", got)
	}
	if entry.FormatLastModified() != "-" {
		t.Errorf("FormatLastModified() = %q, want -", entry.FormatLastModified())
	}
}
