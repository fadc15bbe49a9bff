package service

import "strings"

// NormalizeEmail canonicalizes an email for storage and lookup so equality is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SplitCommaList splits a comma-delimited string, trims whitespace and drops
// empty entries, preserving order.
func SplitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StringList normalizes a decoded JSON value that may arrive as a list of
// strings or as a single comma-delimited string into a canonical ordered list.
// Anything else normalizes to an empty list. Applied uniformly at every entry
// point that accepts such a field.
func StringList(v any) []string {
	switch val := v.(type) {
	case []string:
		out := make([]string, 0, len(val))
		for _, item := range val {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				continue
			}
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return SplitCommaList(val)
	default:
		return []string{}
	}
}
