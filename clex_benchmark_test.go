package clex

import (
	"bytes"
	"os"
	"testing"
)

// Benchmark data - a reasonably complex C-like source file.
var benchmarkSource, _ = os.ReadFile("testfile/example.c")

// BenchmarkLexer measures the performance of tokenizing a source file.
func BenchmarkLexer(b *testing.B) {
	if benchmarkSource == nil {
		b.Skip("Cannot read benchmark data file")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := NewLexer(benchmarkSource)
		for {
			tok, err := l.NextToken()
			if err != nil {
				b.Fatal(err)
			}
			if tok.Type == EOF {
				break
			}
		}
	}
}

// BenchmarkLexerPooled measures the same scan through the lexer pool.
func BenchmarkLexerPooled(b *testing.B) {
	if benchmarkSource == nil {
		b.Skip("Cannot read benchmark data file")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := GetLexer(benchmarkSource)
		for {
			tok, err := l.NextToken()
			if err != nil {
				b.Fatal(err)
			}
			if tok.Type == EOF {
				break
			}
		}
		PutLexer(l)
	}
}

// BenchmarkStreamLexer measures the stream-based lexer over the same input.
func BenchmarkStreamLexer(b *testing.B) {
	if benchmarkSource == nil {
		b.Skip("Cannot read benchmark data file")
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l := NewStreamLexer(bytes.NewReader(benchmarkSource))
		for {
			tok, err := l.NextToken()
			if err != nil {
				b.Fatal(err)
			}
			if tok.Type == EOF {
				break
			}
		}
	}
}
