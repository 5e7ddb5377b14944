package settleplot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleMenuAndChoose(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("2\n\n"), &out)

	c.Menu([]string{"a.xlsx", "b.xlsx", "c.xlsx"})
	idx, err := c.Choose(3)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	c.Pause()

	text := out.String()
	assert.Contains(t, text, "Available Excel files:")
	assert.Contains(t, text, "1. a.xlsx\n2. b.xlsx\n3. c.xlsx\n")
	assert.Contains(t, text, "(1-3)")
	assert.Contains(t, text, "Press Enter to exit...")
}

func TestConsoleChooseInvalid(t *testing.T) {
	for _, input := range []string{"abc\n", "0\n", "99\n", "\n", ""} {
		c := NewConsole(strings.NewReader(input), &bytes.Buffer{})
		_, err := c.Choose(3)
		assert.ErrorIs(t, err, ErrInvalidChoice, "input %q", input)
	}
}

func TestConsoleChooseWithoutNewline(t *testing.T) {
	c := NewConsole(strings.NewReader("3"), &bytes.Buffer{})
	idx, err := c.Choose(3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestConsolePauseAtEOF(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out)
	c.Pause()
	assert.Contains(t, out.String(), "Press Enter to exit...")
}
