package clex

import "os"

// Lex tokenizes data and returns its tokens in source order, excluding
// the terminating EOF token.
func Lex(data []byte) ([]Token, error) {
	l := GetLexer(data)
	defer PutLexer(l)
	return Collect(l)
}

// LexFile reads path fully into memory and tokenizes it.
func LexFile(path string) ([]Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Lex(data)
}

// Collect drains src until its EOF token and returns the tokens that
// precede it.
func Collect(src TokenSource) ([]Token, error) {
	var toks []Token
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

// Count drains src until its EOF token and returns the number of
// tokens that precede it.
func Count(src TokenSource) (int, error) {
	n := 0
	for {
		tok, err := src.NextToken()
		if err != nil {
			return 0, err
		}
		if tok.Type == EOF {
			return n, nil
		}
		n++
	}
}
