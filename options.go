package clex

// OutputStyle defines the formats the Encoder can emit.
type OutputStyle int

const (
	// StyleText is the default style: each token's debug
	// representation on its own line.
	StyleText OutputStyle = iota

	// StyleJSON emits the whole token sequence as one indented JSON
	// array, for tooling that consumes the dump programmatically.
	StyleJSON
)

const (
	// StyleDefault is an alias for StyleText.
	StyleDefault = StyleText
)

// FormatOptions provides options for controlling the encoder's output.
type FormatOptions struct {
	Style OutputStyle
	EOF   bool // If true, the terminating EOF token is emitted as well.
}
