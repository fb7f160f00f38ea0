package clex

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

type EncoderOption func(*FormatOptions)

func WithStyle(style OutputStyle) EncoderOption {
	return func(o *FormatOptions) {
		o.Style = style
	}
}

func WithEOF() EncoderOption {
	return func(o *FormatOptions) {
		o.EOF = true
	}
}

// Encoder writes a token stream to an io.Writer.
type Encoder struct {
	w    io.Writer
	opts FormatOptions
}

func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	options := FormatOptions{
		Style: StyleDefault,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Encoder{w: w, opts: options}
}

// Encode drains src and writes its tokens in the configured style. The
// EOF token terminates the stream and is omitted unless WithEOF was
// set. A lex error stops the output and is returned as-is.
func (enc *Encoder) Encode(src TokenSource) error {
	if enc.opts.Style == StyleJSON {
		return enc.encodeJSON(src)
	}
	return enc.encodeText(src)
}

// encodeText writes each token as it is produced, so on a lex error
// every token scanned before the failure has already been emitted.
func (enc *Encoder) encodeText(src TokenSource) error {
	for {
		tok, err := src.NextToken()
		if err != nil {
			return err
		}
		if tok.Type == EOF {
			if enc.opts.EOF {
				if _, err := fmt.Fprintln(enc.w, tok); err != nil {
					return err
				}
			}
			return nil
		}
		if _, err := fmt.Fprintln(enc.w, tok); err != nil {
			return err
		}
	}
}

// jsonToken is the serialization shape for StyleJSON; literals become
// plain strings rather than base64-encoded byte slices.
type jsonToken struct {
	Type    string `json:"type"`
	Literal string `json:"literal"`
}

func (enc *Encoder) encodeJSON(src TokenSource) error {
	toks, err := Collect(src)
	if err != nil {
		return err
	}
	out := make([]jsonToken, 0, len(toks)+1)
	for _, t := range toks {
		out = append(out, jsonToken{Type: string(t.Type), Literal: BytesToString(t.Literal)})
	}
	if enc.opts.EOF {
		out = append(out, jsonToken{Type: string(EOF)})
	}
	return json.MarshalWrite(enc.w, out, jsontext.Expand(true), jsontext.WithIndent("  "))
}
