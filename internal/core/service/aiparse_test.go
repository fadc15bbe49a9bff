package service

import (
	"reflect"
	"testing"
)

func TestParseStructured_Direct(t *testing.T) {
	obj, stage := parseStructured(`{"title":"Engineer"}`)
	if stage != stageDirect {
		t.Fatalf("expected direct stage, got %v", stage)
	}
	if obj["title"] != "Engineer" {
		t.Fatalf("unexpected object: %v", obj)
	}
}

func TestParseStructured_Fenced(t *testing.T) {
	inputs := []string{
		"```json\n{\"title\":\"Engineer\"}\n```",
		"```\n{\"title\":\"Engineer\"}\n```",
		"Here is your result:\n```json\n{\"title\":\"Engineer\"}\n```\nLet me know if you need changes.",
	}
	for _, in := range inputs {
		obj, stage := parseStructured(in)
		if stage != stageFenced {
			t.Fatalf("expected fenced stage for %q, got %v", in, stage)
		}
		if obj["title"] != "Engineer" {
			t.Fatalf("unexpected object for %q: %v", in, obj)
		}
	}
}

func TestParseStructured_Defaulted(t *testing.T) {
	for _, in := range []string{"", "I could not produce JSON, sorry.", "```json\nnot json\n```"} {
		obj, stage := parseStructured(in)
		if stage != stageDefaulted {
			t.Fatalf("expected defaulted stage for %q, got %v", in, stage)
		}
		if len(obj) != 0 {
			t.Fatalf("expected empty object, got %v", obj)
		}
	}
}

func TestFieldHelpers(t *testing.T) {
	obj := map[string]any{
		"title":  "  Engineer  ",
		"skills": "Go, SQL",
		"blank":  "   ",
		"experience": []any{
			map[string]any{"company": "Acme"},
			"not an object",
		},
	}

	if got := stringField(obj, "title", "fallback"); got != "Engineer" {
		t.Errorf("stringField trimmed = %q", got)
	}
	if got := stringField(obj, "missing", "fallback"); got != "fallback" {
		t.Errorf("stringField missing = %q", got)
	}
	if got := stringField(obj, "blank", "fallback"); got != "fallback" {
		t.Errorf("stringField blank = %q", got)
	}
	if got := listField(obj, "skills"); !reflect.DeepEqual(got, []string{"Go", "SQL"}) {
		t.Errorf("listField = %v", got)
	}
	entries := objectListField(obj, "experience")
	if len(entries) != 1 || entries[0]["company"] != "Acme" {
		t.Errorf("objectListField = %v", entries)
	}
}
