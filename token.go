package clex

import (
	"errors"
	"fmt"
)

type TokenType string

type Token struct {
	Type    TokenType
	Literal []byte // 使用 []byte 避免在词法分析阶段分配新字符串
}

func (t Token) String() string {
	return fmt.Sprintf("Type:%s, Literal:`%s`", t.Type, string(t.Literal))
}

const (
	EOF    TokenType = "EOF"
	IDENT  TokenType = "IDENT"
	NUMBER TokenType = "NUMBER"
	STRING TokenType = "STRING"
	CHAR   TokenType = "CHAR"
	OP     TokenType = "OP"
	PUNCT  TokenType = "PUNCT"
)

// Errors reported while scanning a literal. They are terminal for the
// current stream: after one of them is returned, NextToken reports ErrDone.
var (
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrUnterminatedChar   = errors.New("unterminated char literal")
	ErrInvalidEscape      = errors.New("invalid escape sequence")
)

// ErrDone is returned by NextToken once the stream has already ended,
// either by producing its EOF token or by failing with a lex error.
var ErrDone = errors.New("token stream exhausted")

// twoCharOps is the closed set of two-character operators. The scanner
// prefers these over their one-character prefixes (maximal munch), so
// adding an operator is a data change here, not a control-flow change.
var twoCharOps = map[string]bool{
	"==": true,
	"!=": true,
	"<=": true,
	"=>": true,
	"->": true,
	"++": true,
	"--": true,
	"+=": true,
	"-=": true,
	"*=": true,
	"/=": true,
	"&&": true,
	"||": true,
	"<<": true,
	">>": true,
}

// isPunct 检查 ch 是否是标点符号.
// A lone punctuation character is always a PUNCT token, never a
// one-character OP; two-character operators are matched first.
func isPunct(ch rune) bool {
	switch ch {
	case '{', '}', '(', ')', ';', ',', '[', ']', '<', '>':
		return true
	}
	return false
}

// decodeEscape maps the character following a backslash to the
// character it denotes. The second result is false when no mapping
// exists; string and char scanning both report that as ErrInvalidEscape.
func decodeEscape(ch rune) (rune, bool) {
	switch ch {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	case '\'':
		return '\'', true
	case '"':
		return '"', true
	}
	return 0, false
}
