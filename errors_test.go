package conl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxErrorMessage(t *testing.T) {
	err := newError(3, "unexpected %s", "outdent")
	assert.Equal(t, "3: unexpected outdent", err.Error())
}

func TestSyntaxErrorRawLine(t *testing.T) {
	input := []byte("line 1\nline 2\nline 3")

	t.Run("line <= 0", func(t *testing.T) {
		e := &SyntaxError{Line: 0}
		line, ok := e.RawLine(input)
		assert.False(t, ok)
		assert.Empty(t, line)
	})

	t.Run("valid line", func(t *testing.T) {
		e := &SyntaxError{Line: 2}
		line, ok := e.RawLine(input)
		assert.True(t, ok)
		assert.Equal(t, "line 2", line)
	})

	t.Run("line exceeds input length", func(t *testing.T) {
		e := &SyntaxError{Line: 100}
		_, ok := e.RawLine(input)
		assert.False(t, ok)
	})
}
