package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "folderID" -> "folder ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"folderID": "folder ID",
		"noteID":   "note ID",
		"flag":     "flag name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ValidateFlag checks that name is one of the display flag setting keys
func ValidateFlag(name string) error {
	if err := ValidateRequired("flag", name); err != nil {
		return err
	}
	switch name {
	case SettingShowAllNotes, SettingShowTrash:
		return nil
	}
	return &ValidationError{
		Field:   "flag",
		Message: fmt.Sprintf("unknown display flag: %s", name),
	}
}
