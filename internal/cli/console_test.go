package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewConsole(strings.NewReader(input), out), out
}

func TestWordSplitsOnWhitespace(t *testing.T) {
	c, out := newTestConsole("  alice\tpw\n\nbob")

	for _, want := range []string{"alice", "pw", "bob"} {
		got, err := c.Word("> ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := c.Word("")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestLineReadsRestOfCurrentLine(t *testing.T) {
	c, _ := newTestConsole("carol hello there friend\nnext\n")

	word, err := c.Word("")
	require.NoError(t, err)
	assert.Equal(t, "carol", word)

	line, err := c.Line("")
	require.NoError(t, err)
	assert.Equal(t, "hello there friend", line)

	word, err = c.Word("")
	require.NoError(t, err)
	assert.Equal(t, "next", word)
}

func TestLineFallsThroughToNextLine(t *testing.T) {
	c, _ := newTestConsole("carol\nsee you soon\n")

	_, err := c.Word("")
	require.NoError(t, err)

	line, err := c.Line("")
	require.NoError(t, err)
	assert.Equal(t, "see you soon", line)
}

func TestLineWithoutTrailingNewline(t *testing.T) {
	c, _ := newTestConsole("last words")
	line, err := c.Line("")
	require.NoError(t, err)
	assert.Equal(t, "last words", line)
}

func TestIntRepromptsUntilValid(t *testing.T) {
	c, out := newTestConsole("abc\n-1 7\n0\n3\n")

	n, err := c.Int("rounds? ", "again: ", func(n int) bool { return n > 0 })
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "rounds? again: again: again: ", out.String())
}

func TestIntEOF(t *testing.T) {
	c, _ := newTestConsole("nope\n")
	_, err := c.Int("", "", nil)
	assert.ErrorIs(t, err, io.EOF)
}
