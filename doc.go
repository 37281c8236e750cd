// A parser for CONL, an indentation-structured human-editable
// configuration format (a simpler peer to YAML).
//
// Two layers are exposed:
//
//   - Tokenizer scans a byte buffer and yields a linear stream of lexical
//     tokens (indents/outdents/keys/items/values/comments/newlines). It
//     tolerates most structural mistakes and keeps scanning past them,
//     which makes it suitable for linters and syntax highlighters.
//   - Parser wraps a Tokenizer and enforces the grammar: it pairs keys
//     and list items with their values, injects a synthetic NoValue
//     token when one is missing, rejects a map and a list sharing one
//     indentation section, and stops at the first structural error.
//
// A tiny example, walking a parsed document:
//
//	for tok, err := range conl.Parse([]byte("name = conl\n")) {
//	    if err != nil {
//	        panic(err)
//	    }
//	    fmt.Println(tok.Kind, tok.Line)
//	}
//
// Call Token.Unescape to turn a quoted or multi-line lexeme into its
// logical string value; plain tokens decode for free (no allocation).
package conl
