package clex

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func drain(t *testing.T, src TokenSource) []Token {
	t.Helper()
	toks, err := Collect(src)
	if err != nil {
		t.Fatalf("unexpected error while draining: %v", err)
	}
	return toks
}

func TestStreamLexerMatchesLexer(t *testing.T) {
	inputs := []string{
		"",
		"int x = 42;",
		"// c\n/* b */\nfoo",
		`s = "a\tb"; c = '\n';`,
		"if (a <= b && c != d) { e++; }\nv[0] -> w;",
		"1.2.3 .5 42.",
		"héllo = 'é';",
	}
	for _, input := range inputs {
		want := drain(t, NewLexer([]byte(input)))
		got := drain(t, NewStreamLexer(strings.NewReader(input)))
		if !reflect.DeepEqual(want, got) {
			t.Fatalf("input %q: stream lexer diverged.\nlexer:  %v\nstream: %v", input, want, got)
		}
	}
}

func TestStreamLexerErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{`"abc`, ErrUnterminatedString},
		{`"\q"`, ErrInvalidEscape},
		{`'a`, ErrUnterminatedChar},
	}
	for _, tt := range tests {
		l := NewStreamLexer(strings.NewReader(tt.input))
		_, err := l.NextToken()
		if !errors.Is(err, tt.wantErr) {
			t.Fatalf("input %q: expected error %v, got %v", tt.input, tt.wantErr, err)
		}
		if _, err := l.NextToken(); !errors.Is(err, ErrDone) {
			t.Fatalf("input %q: expected ErrDone after a lex error, got %v", tt.input, err)
		}
	}
}

func TestStreamLexerLargeInput(t *testing.T) {
	// Large enough to force many refills of the underlying bufio.Reader.
	input := strings.Repeat("foo bar(42); s = \"a\\nb\"; c = 'x'; total += 1.5;\n", 500)

	want := drain(t, NewLexer([]byte(input)))
	got := drain(t, NewStreamLexer(strings.NewReader(input)))
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(got))
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("stream lexer diverged on large input")
	}
}

func TestStreamLexerExhausted(t *testing.T) {
	l := NewStreamLexer(strings.NewReader("x"))
	drain(t, l)
	if _, err := l.NextToken(); !errors.Is(err, ErrDone) {
		t.Fatalf("expected ErrDone after EOF, got %v", err)
	}
}
