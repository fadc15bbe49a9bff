package service

import (
	"reflect"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	cases := map[string]string{
		"Alice@Example.COM":   "alice@example.com",
		"  bob@example.com  ": "bob@example.com",
		"carol@example.com":   "carol@example.com",
	}
	for in, want := range cases {
		if got := NormalizeEmail(in); got != want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitCommaList(t *testing.T) {
	got := SplitCommaList("Go, PostgreSQL ,Docker,, ")
	want := []string{"Go", "PostgreSQL", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitCommaList = %v, want %v", got, want)
	}
}

func TestStringList(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []string
	}{
		{"string list", []string{"a", " b ", ""}, []string{"a", "b"}},
		{"any list", []any{"x", " y", 42, "z "}, []string{"x", "y", "z"}},
		{"comma string", "a, b ,c", []string{"a", "b", "c"}},
		{"number", 7.0, []string{}},
		{"nil", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StringList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("StringList(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
