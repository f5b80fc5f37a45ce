package lz

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	lzerrors "github.com/randalmurphal/lazyconf/errors"
	"github.com/randalmurphal/lazyconf/testutil"
)

func TestParse_Fixture(t *testing.T) {
	list, err := Parse(testutil.LoadFixtureString(t, "powers.lz"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := &List{Items: []*Lz{
		{Name: "Superman", Deets: map[string]string{"power": "fly", "age": "30"}},
		{Name: "Batman", Deets: map[string]string{"power": "money", "home": "Gotham"}},
	}}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Layout(t *testing.T) {
	tests := []struct {
		name  string
		input string
		names []string
	}{
		{"empty", "", []string{}},
		{"only comments", "#a\n  # b\n\n", []string{}},
		{"crlf", "A:\r\n    k:v\r\nB:\r\n", []string{"A", "B"}},
		{"bare carriage returns", "A\r\tk:v\rB", []string{"A", "B"}},
		{"tab indent", "A\n\tk:v\n", []string{"A"}},
		{"duplicates", "A\nA\n", []string{"A", "A"}},
		{"no trailing newline", "A\n    k:v", []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(tt.names, list.Names()); diff != "" {
				t.Errorf("Names() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_CRLFAttributes(t *testing.T) {
	list, err := Parse("A:\r\n    k:v\r\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got, _ := list.Get("A.k"); got != "v" {
		t.Errorf("A.k = %q, want %q", got, "v")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{"attribute first", "    k:v\nA\n", 0},
		{"attribute after comment", "#c\n\n  k:v\n", 2},
		{"missing colon", "A:\n    k:v\n    nope\n", 2},
		{"missing colon after crlf", "A\r\n  nope\r\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, lzerrors.ErrParse) {
				t.Fatalf("Parse() error = %v, want ErrParse", err)
			}
			var pe *lzerrors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse() error type = %T, want *ParseError", err)
			}
			if pe.Line != tt.line {
				t.Errorf("Line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
}

func TestList_UnmarshalText(t *testing.T) {
	list := powers()
	if err := list.UnmarshalText([]byte("Robin:\n    power:none\n")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if diff := cmp.Diff([]string{"Robin"}, list.Names()); diff != "" {
		t.Errorf("records should be replaced (-want +got):\n%s", diff)
	}

	if err := list.UnmarshalText([]byte(" bad")); err == nil {
		t.Error("UnmarshalText() expected error")
	}
}
