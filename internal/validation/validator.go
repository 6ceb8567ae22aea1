// =============================================================================
// CSV to YAML Converter - Validation Module
// =============================================================================
//
// This module validates a preset key selection (from --keys or the config
// file) against the keys discovered in the records.
//
// VALIDATION RULES:
//   - Every requested key must exist in the records (exact match)
//   - A key may be requested only once
//   - At least one key must be requested
//
// Unknown keys get a suggestion when a discovered key differs only in case
// or surrounding whitespace, which is the usual CSV header mistake.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"
)

// =============================================================================
// VALIDATION ERROR STRUCTURE
// =============================================================================

// ValidationError describes one problem with a requested key.
type ValidationError struct {
	// Key is the requested key the error is about.
	Key string

	// ErrorType categorizes the error.
	// Values: "unknown_key", "duplicate_key", "empty_selection"
	ErrorType string

	// Message is a human-readable description.
	Message string

	// Suggestion is a discovered key that looks like what was meant, if any.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// =============================================================================
// VALIDATION FUNCTIONS
// =============================================================================

// ValidateKeys checks requested against discovered.
//
// PARAMETERS:
//   - discovered: The keys found in the records, in discovery order.
//   - requested: The preset selection.
//
// RETURNS:
//   - Every problem found, in requested order. Empty when the selection is valid.
func ValidateKeys(discovered, requested []string) []*ValidationError {
	var errs []*ValidationError

	if len(requested) == 0 {
		return append(errs, &ValidationError{
			ErrorType: "empty_selection",
			Message:   "no keys requested",
		})
	}

	known := make(map[string]bool, len(discovered))
	for _, key := range discovered {
		known[key] = true
	}

	seen := make(map[string]bool, len(requested))
	for _, key := range requested {
		if seen[key] {
			errs = append(errs, &ValidationError{
				Key:       key,
				ErrorType: "duplicate_key",
				Message:   fmt.Sprintf("key %q requested more than once", key),
			})
			continue
		}
		seen[key] = true

		if !known[key] {
			errs = append(errs, &ValidationError{
				Key:        key,
				ErrorType:  "unknown_key",
				Message:    fmt.Sprintf("key %q not found in records", key),
				Suggestion: suggest(key, discovered),
			})
		}
	}

	return errs
}

// suggest returns the discovered key equal to key ignoring case and
// surrounding whitespace, or "".
func suggest(key string, discovered []string) string {
	want := strings.ToLower(strings.TrimSpace(key))
	for _, candidate := range discovered {
		if strings.ToLower(strings.TrimSpace(candidate)) == want {
			return candidate
		}
	}
	return ""
}

// =============================================================================
// ERROR REPORTING
// =============================================================================

// FormatErrors formats validation errors as a single message.
//
// EXAMPLE:
//   2 invalid key(s): key "URL" not found in records (did you mean "url"?);
//   key "name" requested more than once
func FormatErrors(errs []*ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	messages := make([]string, len(errs))
	for i, e := range errs {
		messages[i] = e.Error()
	}

	return fmt.Sprintf("%d invalid key(s): %s", len(errs), strings.Join(messages, "; "))
}
