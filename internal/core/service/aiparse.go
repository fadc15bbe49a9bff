package service

import (
	"encoding/json"
	"regexp"
	"strings"
)

// parseStage tags which recovery stage produced a structured result from the
// generator's free-form output.
type parseStage int

const (
	stageDirect parseStage = iota
	stageFenced
	stageDefaulted
)

func (s parseStage) String() string {
	switch s {
	case stageDirect:
		return "direct"
	case stageFenced:
		return "fenced"
	default:
		return "defaulted"
	}
}

var fencedBlock = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)```")

// parseStructured recovers a JSON object from generator output. It attempts a
// direct parse first, then looks for a fenced code block (with or without a
// language tag), and finally gives up with an empty object so consumers can
// default-fill every field. Consumers must apply per-field defaulting no
// matter which stage succeeded.
func parseStructured(raw string) (map[string]any, parseStage) {
	trimmed := strings.TrimSpace(raw)

	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
		return obj, stageDirect
	}

	if m := fencedBlock.FindStringSubmatch(trimmed); m != nil {
		inner := strings.TrimSpace(m[1])
		if err := json.Unmarshal([]byte(inner), &obj); err == nil {
			return obj, stageFenced
		}
	}

	return map[string]any{}, stageDefaulted
}

// stringField reads a string value out of a parsed object, falling back to
// def when the key is absent or of the wrong shape.
func stringField(obj map[string]any, key, def string) string {
	if v, ok := obj[key].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

// listField reads a string-list value, accepting a comma-delimited string as
// an alternative shape. Absent or malformed values yield an empty list.
func listField(obj map[string]any, key string) []string {
	return StringList(obj[key])
}

// objectListField reads a list of nested objects, dropping non-object entries.
func objectListField(obj map[string]any, key string) []map[string]any {
	raw, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
