// Package fields extracts and normalizes values from loosely-typed stored
// documents. Documents accumulate historical key spellings (snake_case,
// camelCase, language-suffixed, unsuffixed legacy), so every read goes
// through Resolve with an ordered candidate list instead of ad hoc lookups.
package fields

import (
	"regexp"
	"strings"
)

// Resolve returns the value of the first candidate key present in the record
// with a non-nil value. Ordering of keys encodes precedence: language-specific
// keys come before language-agnostic legacy keys. No type coercion happens here.
func Resolve(record map[string]any, keys ...string) any {
	if record == nil {
		return nil
	}
	for _, key := range keys {
		if value, ok := record[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// ToScalar returns the trimmed string form of a value, or "" when the value
// is not a string. Content-authoring mistakes must never break rendering, so
// malformed input degrades to empty rather than erroring.
func ToScalar(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// ToParagraphs splits a scalar on runs of two or more newlines into trimmed,
// non-empty paragraphs, preserving order.
func ToParagraphs(value any) []string {
	text := ToScalar(value)
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := paragraphBreak.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// ToLines turns a value into a list of trimmed, non-empty lines. Native lists
// map each element through ToScalar; strings split on single newlines. Order
// is preserved in both cases.
func ToLines(value any) []string {
	if items, ok := value.([]any); ok {
		lines := make([]string, 0, len(items))
		for _, item := range items {
			if line := ToScalar(item); line != "" {
				lines = append(lines, line)
			}
		}
		return lines
	}
	if items, ok := value.([]string); ok {
		lines := make([]string, 0, len(items))
		for _, item := range items {
			if line := strings.TrimSpace(item); line != "" {
				lines = append(lines, line)
			}
		}
		return lines
	}
	text := ToScalar(value)
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
