package clex

// TokenSource abstracts the behavior of a lexer. The in-memory Lexer
// and the stream-based StreamLexer both implement it, so consumers
// (Encoder, Collect, Count) can use them interchangeably.
type TokenSource interface {
	NextToken() (Token, error)
}
