package clex

import (
	"bufio"
	"bytes"
	"io"
	"unicode"
	"unicode/utf8"
)

// This file contains the stream-based lexer.

// StreamLexer 是一个从 io.Reader 读取数据的词法分析器.
// It produces the same token sequence as Lexer without first
// materializing the whole input in memory, at the cost of copying
// every literal out of its internal buffer.
type StreamLexer struct {
	r    *bufio.Reader
	ch   rune // one-rune lookahead, 0 at end of input
	done bool
	// Reusable buffer for building literals.
	literalBuf bytes.Buffer
}

// NewStreamLexer creates a new stream-based lexer reading from r.
func NewStreamLexer(r io.Reader) *StreamLexer {
	l := &StreamLexer{r: bufio.NewReader(r)}
	l.readChar()
	return l
}

func (l *StreamLexer) readChar() {
	r, _, err := l.r.ReadRune()
	if err != nil {
		l.ch = 0
		return
	}
	l.ch = r
}

func (l *StreamLexer) peekChar() rune {
	b, err := l.r.Peek(utf8.UTFMax)
	if len(b) == 0 && err != nil {
		return 0
	}
	r, _ := utf8.DecodeRune(b)
	return r
}

// NextToken returns the next token from the stream. Behavior matches
// Lexer.NextToken, including the ErrDone terminal state.
func (l *StreamLexer) NextToken() (Token, error) {
	if l.done {
		return Token{}, ErrDone
	}
	l.skipWhitespaceAndComments()
	switch {
	case l.ch == 0:
		l.done = true
		return Token{Type: EOF, Literal: []byte{}}, nil
	case isIdentifierStart(l.ch):
		return Token{Type: IDENT, Literal: l.readWhile(isIdentifierChar)}, nil
	case isDigit(l.ch):
		return Token{Type: NUMBER, Literal: l.readWhile(isNumberChar)}, nil
	case l.ch == '"':
		l.readChar()
		tok, err := l.readString()
		if err != nil {
			l.done = true
			return Token{}, err
		}
		return tok, nil
	case l.ch == '\'':
		l.readChar()
		tok, err := l.readCharLiteral()
		if err != nil {
			l.done = true
			return Token{}, err
		}
		return tok, nil
	default:
		return l.readOperator(), nil
	}
}

func (l *StreamLexer) skipWhitespaceAndComments() {
	for {
		progressed := false
		for unicode.IsSpace(l.ch) {
			progressed = true
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			for l.ch != 0 {
				nl := l.ch == '\n'
				l.readChar()
				if nl {
					break
				}
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
			continue
		}
		if !progressed {
			break
		}
	}
}

// readWhile accumulates characters for as long as pred holds, leaving
// the first non-matching character in the lookahead.
func (l *StreamLexer) readWhile(pred func(rune) bool) []byte {
	l.literalBuf.Reset()
	for l.ch != 0 && pred(l.ch) {
		l.literalBuf.WriteRune(l.ch)
		l.readChar()
	}
	c := make([]byte, l.literalBuf.Len())
	copy(c, l.literalBuf.Bytes())
	return c
}

func (l *StreamLexer) readString() (Token, error) {
	l.literalBuf.Reset()
	for l.ch != 0 {
		c := l.ch
		l.readChar()
		switch c {
		case '\\':
			if l.ch == 0 {
				return Token{}, ErrUnterminatedString
			}
			esc, ok := decodeEscape(l.ch)
			if !ok {
				return Token{}, ErrInvalidEscape
			}
			l.readChar()
			l.literalBuf.WriteRune(esc)
		case '"':
			lit := make([]byte, l.literalBuf.Len())
			copy(lit, l.literalBuf.Bytes())
			return Token{Type: STRING, Literal: lit}, nil
		default:
			l.literalBuf.WriteRune(c)
		}
	}
	return Token{}, ErrUnterminatedString
}

func (l *StreamLexer) readCharLiteral() (Token, error) {
	if l.ch == 0 {
		return Token{}, ErrUnterminatedChar
	}
	c := l.ch
	l.readChar()
	if c == '\\' {
		if l.ch == 0 {
			return Token{}, ErrUnterminatedChar
		}
		esc, ok := decodeEscape(l.ch)
		if !ok {
			return Token{}, ErrInvalidEscape
		}
		l.readChar()
		c = esc
	}
	if l.ch != '\'' {
		return Token{}, ErrUnterminatedChar
	}
	l.readChar()
	return Token{Type: CHAR, Literal: utf8.AppendRune(nil, c)}, nil
}

func (l *StreamLexer) readOperator() Token {
	first := l.ch
	l.readChar()
	if l.ch != 0 {
		two := string([]rune{first, l.ch})
		if twoCharOps[two] {
			l.readChar()
			return Token{Type: OP, Literal: []byte(two)}
		}
	}
	if isPunct(first) {
		return Token{Type: PUNCT, Literal: utf8.AppendRune(nil, first)}
	}
	return Token{Type: OP, Literal: utf8.AppendRune(nil, first)}
}
