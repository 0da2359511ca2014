package utils

import "strings"

// RequiredField pairs a human-readable label with the submitted value, so
// handlers can declare their required inputs in one place instead of
// repeating the same if-chain per route.
type RequiredField struct {
	Label string
	Value string
}

// MissingFieldMessage returns "<Label> is required" for the first field
// whose value is blank, or "" when everything is present. Fields are
// checked in the order given so the error message is deterministic.
func MissingFieldMessage(fields ...RequiredField) string {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return f.Label + " is required"
		}
	}
	return ""
}
