// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package highlight

import (
	"reflect"
	"strings"
	"testing"
)

func TestLine(t *testing.T) {
	kw := DefaultKeywords()

	tests := []struct {
		name string
		line string
		want []Span
	}{
		{
			name: "plain text only",
			line: "x := y + 1;",
			want: []Span{{"x := y + 1;", StylePlain}},
		},
		{
			name: "keywords in declaration",
			line: "VAR x : INT;",
			want: []Span{
				{"VAR", StyleKeyword},
				{" x : ", StylePlain},
				{"INT", StyleKeyword},
				{";", StylePlain},
			},
		},
		{
			name: "line comment",
			line: "x := 1; // set",
			want: []Span{
				{"x := 1; ", StylePlain},
				{"// set", StyleComment},
			},
		},
		{
			name: "comment only",
			line: "// VAR is not highlighted here",
			want: []Span{{"// VAR is not highlighted here", StyleComment}},
		},
		{
			name: "closed block comment with trailing code",
			line: "(* init *) bDone := TRUE;",
			want: []Span{
				{"(* init *)", StyleComment},
				{" bDone := TRUE;", StylePlain},
			},
		},
		{
			name: "unclosed block comment",
			line: "(* continues on next line",
			want: []Span{{"(* continues on next line", StyleComment}},
		},
		{
			name: "block then line comment",
			line: "a := 1; (* a *) b := 2; // end",
			want: []Span{
				{"a := 1; ", StylePlain},
				{"(* a *)", StyleComment},
				{" b := 2; ", StylePlain},
				{"// end", StyleComment},
			},
		},
		{
			name: "keyword substrings stay plain",
			line: "nINTERVAL := MY_INT;",
			want: []Span{{"nINTERVAL := MY_INT;", StylePlain}},
		},
		{
			name: "keyword at start and end",
			line: "IF bRun THEN",
			want: []Span{
				{"IF", StyleKeyword},
				{" bRun ", StylePlain},
				{"THEN", StyleKeyword},
			},
		},
		{
			name: "lowercase is not matched",
			line: "var x : int;",
			want: []Span{{"var x : int;", StylePlain}},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Line(tt.line, kw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Line(%q) = %v, want %v", tt.line, got, tt.want)
			}

			// Concatenating the spans must reproduce the line verbatim.
			var b strings.Builder
			for _, s := range got {
				b.WriteString(s.Text)
			}
			if b.String() != tt.line {
				t.Errorf("spans reassemble to %q, want %q", b.String(), tt.line)
			}
		})
	}
}

func TestLineCustomKeywords(t *testing.T) {
	kw := NewSet([]string{"MOVE"})

	got := Line("MOVE x TO y;", kw)
	want := []Span{
		{"MOVE", StyleKeyword},
		{" x TO y;", StylePlain},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Line = %v, want %v", got, want)
	}
}
