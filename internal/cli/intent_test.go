package cli

import (
	"errors"
	"testing"
)

func TestParseIntentModes(t *testing.T) {
	cases := []struct {
		name string
		inv  Invocation
		want Intent
	}{
		{
			name: "no arguments shows today",
			inv:  Invocation{},
			want: Intent{Mode: ModeShowToday},
		},
		{
			name: "positional words are joined",
			inv:  Invocation{Args: []string{"Fixed", "bug", "in", "parser"}},
			want: Intent{Mode: ModeLog, Message: "Fixed bug in parser"},
		},
		{
			name: "piped stdin without arguments",
			inv:  Invocation{StdinPiped: true},
			want: Intent{Mode: ModeLogPiped},
		},
		{
			name: "arguments win over piped stdin",
			inv:  Invocation{Args: []string{"typed"}, StdinPiped: true},
			want: Intent{Mode: ModeLog, Message: "typed"},
		},
		{
			name: "interactive",
			inv:  Invocation{Interactive: true},
			want: Intent{Mode: ModeInteractive},
		},
		{
			name: "search keeps surrounding spaces",
			inv:  Invocation{Search: " bug", SearchSet: true},
			want: Intent{Mode: ModeSearch, Keyword: " bug"},
		},
		{
			name: "case sensitive search",
			inv:  Invocation{Search: "Parser", SearchSet: true, CaseSensitive: true},
			want: Intent{Mode: ModeSearch, Keyword: "Parser", CaseSensitive: true},
		},
		{
			name: "edit",
			inv:  Invocation{Edit: true},
			want: Intent{Mode: ModeEdit},
		},
		{
			name: "history",
			inv:  Invocation{Days: 7, DaysSet: true},
			want: Intent{Mode: ModeHistory, Days: 7},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIntent(tc.inv)
			if err != nil {
				t.Fatalf("ParseIntent() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseIntent() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestParseIntentRejectsInvalidInvocations(t *testing.T) {
	cases := []struct {
		name string
		inv  Invocation
	}{
		{name: "interactive and edit", inv: Invocation{Interactive: true, Edit: true}},
		{name: "search and list", inv: Invocation{SearchSet: true, Search: "x", DaysSet: true, Days: 2}},
		{name: "all modes", inv: Invocation{Interactive: true, Edit: true, SearchSet: true, Search: "x", DaysSet: true, Days: 1}},
		{name: "mode flag with message", inv: Invocation{SearchSet: true, Search: "x", Args: []string{"extra"}}},
		{name: "zero days", inv: Invocation{DaysSet: true, Days: 0}},
		{name: "negative days", inv: Invocation{DaysSet: true, Days: -2}},
		{name: "blank keyword", inv: Invocation{SearchSet: true, Search: "   "}},
		{name: "case sensitive without search", inv: Invocation{CaseSensitive: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseIntent(tc.inv)
			var usageErr *UsageError
			if !errors.As(err, &usageErr) {
				t.Fatalf("ParseIntent() error = %v, want *UsageError", err)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if got := ModeHistory.String(); got != "history" {
		t.Fatalf("ModeHistory.String() = %q, want %q", got, "history")
	}
	if got := Mode(42).String(); got != "mode(42)" {
		t.Fatalf("Mode(42).String() = %q, want %q", got, "mode(42)")
	}
}
