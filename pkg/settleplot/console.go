package settleplot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is the interactive prompt used to pick a workbook.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console reading lines from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Printf writes a formatted message.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Menu prints files as a 1-based numbered list.
func (c *Console) Menu(files []string) {
	c.Printf("Available Excel files:\n\n")
	for i, name := range files {
		c.Printf("%d. %s\n", i+1, name)
	}
}

// Choose asks for a number between 1 and n and returns the 0-based index.
func (c *Console) Choose(n int) (int, error) {
	c.Printf("\nEnter the number of the file to use (1-%d): ", n)
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}
	return ParseChoice(line, n)
}

// Pause waits for the user to press Enter. End of input counts as Enter.
func (c *Console) Pause() {
	c.Printf("\nPress Enter to exit...")
	c.readLine()
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
