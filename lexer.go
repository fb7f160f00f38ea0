package clex

import (
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input        []byte // 使用 []byte 避免复制
	position     int    // byte offset of ch
	readPosition int    // byte offset just past ch
	ch           rune   // one-rune lookahead, 0 at end of input
	done         bool
}

func NewLexer(input []byte) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Reset re-initializes the lexer with new input for pool reuse.
func (l *Lexer) Reset(input []byte) {
	l.input = input
	l.position = 0
	l.readPosition = 0
	l.ch = 0
	l.done = false
	l.readChar()
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input)
		return
	}
	r, w := utf8.DecodeRune(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.input[l.readPosition:])
	return r
}

// NextToken returns the next token from the input. The EOF token is
// produced exactly once; after that, or after a lex error, every call
// returns ErrDone.
func (l *Lexer) NextToken() (Token, error) {
	if l.done {
		return Token{}, ErrDone
	}
	l.skipWhitespaceAndComments()
	switch {
	case l.ch == 0:
		l.done = true
		return Token{Type: EOF, Literal: []byte{}}, nil
	case isIdentifierStart(l.ch):
		return Token{Type: IDENT, Literal: l.readIdentifier()}, nil
	case isDigit(l.ch):
		return Token{Type: NUMBER, Literal: l.readNumber()}, nil
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

// skipWhitespaceAndComments consumes whitespace, // line comments and
// /* block comments until one full pass makes no progress. A lone '/'
// is left for readOperator. An unterminated block comment ends
// silently at end of input.
func (l *Lexer) skipWhitespaceAndComments() {
	for {
		progressed := false
		for unicode.IsSpace(l.ch) {
			progressed = true
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			// consume through the newline itself
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

func (l *Lexer) readIdentifier() []byte {
	position := l.position
	for isIdentifierChar(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber consumes digits and '.' freely mixed; the numeric grammar
// is not validated here, so "1.2.3" is a single NUMBER token.
func (l *Lexer) readNumber() []byte {
	position := l.position
	for isNumberChar(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readString scans a string literal whose opening '"' has already been
// consumed, decoding escapes as it goes.
func (l *Lexer) readString() (Token, error) {
	buf := getLiteralBuf()
	defer putLiteralBuf(buf)
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
			buf.WriteRune(esc)
		case '"':
			lit := make([]byte, buf.Len())
			copy(lit, buf.Bytes())
			return Token{Type: STRING, Literal: lit}, nil
		default:
			buf.WriteRune(c)
		}
	}
	return Token{}, ErrUnterminatedString
}

// readCharLiteral scans a char literal whose opening '\'' has already
// been consumed: one character, escape-decoded if backslashed, then
// the closing quote.
func (l *Lexer) readCharLiteral() (Token, error) {
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

// readOperator handles everything that is not an identifier, number,
// literal or EOF. Two-character operators win over both punctuation
// and one-character operators, so "<=" is one OP while a lone '<' is
// a PUNCT.
func (l *Lexer) readOperator() Token {
	position := l.position
	first := l.ch
	l.readChar()
	if l.ch != 0 && twoCharOps[BytesToString(l.input[position:l.readPosition])] {
		l.readChar()
		return Token{Type: OP, Literal: l.input[position:l.position]}
	}
	if isPunct(first) {
		return Token{Type: PUNCT, Literal: l.input[position:l.position]}
	}
	return Token{Type: OP, Literal: l.input[position:l.position]}
}

func isIdentifierStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentifierChar(ch rune) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isNumberChar(ch rune) bool {
	return isDigit(ch) || ch == '.'
}
