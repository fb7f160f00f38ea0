package main

import (
	"fmt"
	"os"

	"github.com/WJQSERVER/clex"
)

const src = `
// a tiny C-like snippet
int main() {
	str greeting = "hello\n";
	return greeting[0] == 'h';
}
`

func main() {
	// Print the token dump the same way the lex tool does.
	enc := clex.NewEncoder(os.Stdout)
	if err := enc.Encode(clex.NewLexer([]byte(src))); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Count tokens separately; each scan needs a fresh lexer.
	n, err := clex.Count(clex.NewLexer([]byte(src)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(n)
}
