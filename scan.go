package conl

import (
	"strings"
	"unicode/utf8"
)

// isWhitespace reports whether c is CONL's definition of horizontal
// whitespace: space or tab. Newlines are handled separately because they
// carry structural meaning (they end a line and reset expectIndent).
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

// isNewline reports whether c starts a line terminator. newlineWidth
// tells you how many bytes that terminator actually occupies.
func isNewline(c byte) bool {
	return c == '\n' || c == '\r'
}

// newlineWidth returns the byte width of the line terminator at the
// start of rest: 2 for a \r\n pair, 1 for a lone \r or \n.
func newlineWidth(rest []byte) int {
	if rest[0] == '\r' && len(rest) > 1 && rest[1] == '\n' {
		return 2
	}
	return 1
}

// consumeLeadingWhitespace splits off a run of spaces and tabs from the
// front of input, returning the run as indent and everything after it as
// rest. It stops at the first newline, comment marker, or any other byte.
func consumeLeadingWhitespace(input []byte) (indent, rest []byte) {
	i := 0
	for i < len(input) && isWhitespace(input[i]) {
		i++
	}
	return input[:i], input[i:]
}

// indexNewline returns the offset of the first newline byte in b, or
// len(b) if b contains none.
func indexNewline(b []byte) int {
	for i, c := range b {
		if isNewline(c) {
			return i
		}
	}
	return len(b)
}

// nextInclusiveLine splits off the next chunk of b the way a byte-level
// split-on-newline-bytes does: the chunk ends right after the first \r
// or \n byte, treating a \r\n pair as two separate chunks rather than
// one terminator. This is what consumeMultiline needs so it can tell a
// lone \r apart from the \r half of a \r\n pair. If b has no newline
// byte at all, the whole of b is the last, unterminated chunk.
func nextInclusiveLine(b []byte) (line, rest []byte) {
	i := indexNewline(b)
	if i == len(b) {
		return b, nil
	}
	return b[:i+1], b[i+1:]
}

// isBlank reports whether line has no content but whitespace and line
// terminators.
func isBlank(line []byte) bool {
	for _, c := range line {
		if !isWhitespace(c) && !isNewline(c) {
			return false
		}
	}
	return true
}

// validUTF8 reports whether b is well-formed UTF-8.
func validUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// trimSpaceTab trims leading and trailing spaces and tabs, the only
// horizontal whitespace CONL recognizes, from a single-line lexeme.
func trimSpaceTab(s string) string {
	return strings.Trim(s, " \t")
}

// trimNewlineSpaceTab trims whitespace and line terminators from both
// ends of a captured multi-line body, so a leading blank line before the
// content and trailing blank continuation lines don't become part of
// the scalar's value.
func trimNewlineSpaceTab(s string) string {
	return strings.Trim(s, " \t\r\n")
}
