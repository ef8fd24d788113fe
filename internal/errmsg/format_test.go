//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpSidebarSave,
			err:      nil,
			expected: "",
		},
		{
			name:     "sidebar save",
			op:       OpSidebarSave,
			err:      errors.New("database is locked"),
			expected: "Failed to save sidebar width: database is locked",
		},
		{
			name:     "config load",
			op:       OpConfigLoad,
			err:      errors.New("toml: line 3"),
			expected: "Failed to load configuration: toml: line 3",
		},
		{
			name:     "sessions save",
			op:       OpSessionsSave,
			err:      errors.New("disk full"),
			expected: "Failed to save chat sessions: disk full",
		},
		{
			name:     "policy check",
			op:       OpPolicyCheck,
			err:      errors.New("min_width must be below default_width"),
			expected: "Failed to validate sidebar settings: min_width must be below default_width",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpStateOpen,
			context:  "parley.db",
			err:      nil,
			expected: "",
		},
		{
			name:     "with context",
			op:       OpStateOpen,
			context:  "parley.db",
			err:      errors.New("permission denied"),
			expected: "Failed to open state database 'parley.db': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpSessionsLoad,
			context:  "",
			err:      errors.New("no such table"),
			expected: "Failed to load chat sessions: no such table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
