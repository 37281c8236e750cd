package conl

import "iter"

// Tokens returns an iterator over input's raw lexical tokens. Like
// Tokenizer itself, it tolerates structural mistakes and keeps yielding
// tokens (and errors) past them; it only stops once the input truly runs
// out.
func Tokens(input []byte) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		t := NewTokenizer(input)
		for {
			tok, err, ok := t.Next()
			if !ok {
				return
			}
			if !yield(tok, err) {
				return
			}
		}
	}
}

// Parse returns an iterator over input's grammar-checked tokens, pairing
// every MapKey/ListItem with its value (synthesizing NoValue when one is
// missing). Iteration stops at the first error, lexical or structural, so
// the sequence yields at most one error.
func Parse(input []byte) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		p := NewParser(input)
		for {
			tok, err, ok := p.Next()
			if !ok {
				return
			}
			if !yield(tok, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
