package clex

import (
	"bytes"
	"sync"
)

var lexerPool = sync.Pool{New: func() interface{} { return new(Lexer) }}

// GetLexer returns a pooled Lexer initialized for input. Callers that
// lex many small buffers can pair it with PutLexer to avoid one
// allocation per source unit.
func GetLexer(input []byte) *Lexer {
	l := lexerPool.Get().(*Lexer)
	l.Reset(input)
	return l
}

// PutLexer releases l back to the pool. The lexer must not be used
// after the call.
func PutLexer(l *Lexer) {
	l.input = nil
	lexerPool.Put(l)
}

// literalBufPool holds the scratch buffers used while decoding string
// literals; decoded bytes are copied out before the buffer is reused.
var literalBufPool = sync.Pool{New: func() interface{} { return new(bytes.Buffer) }}

func getLiteralBuf() *bytes.Buffer {
	b := literalBufPool.Get().(*bytes.Buffer)
	b.Reset()
	return b
}

func putLiteralBuf(b *bytes.Buffer) {
	literalBufPool.Put(b)
}
