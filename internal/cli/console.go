package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Console reads whitespace-separated answers from an input stream and writes
// prompts to an output stream
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console over in and out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Printf writes formatted text to the console output
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line to the console output
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Word prints prompt and returns the next whitespace-delimited word.
// The delimiter after the word is left unread.
func (c *Console) Word(prompt string) (string, error) {
	if prompt != "" {
		c.Printf("%s", prompt)
	}

	var sb strings.Builder
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if sb.Len() == 0 {
				continue
			}
			_ = c.in.UnreadRune()
			return sb.String(), nil
		}
		sb.WriteRune(r)
	}
}

// Line prints prompt and returns the remainder of the current input line, trimmed.
// If nothing but whitespace remains on the current line, the next line is read.
func (c *Console) Line(prompt string) (string, error) {
	if prompt != "" {
		c.Printf("%s", prompt)
	}

	rest, err := c.readLine()
	if err != nil && rest == "" {
		return "", err
	}
	if rest != "" {
		return rest, nil
	}

	next, err := c.readLine()
	if err != nil && next == "" {
		return "", err
	}
	return next, nil
}

// Int prompts until the next word parses as an int accepted by valid.
// Invalid answers discard the rest of their line and print retry.
func (c *Console) Int(prompt, retry string, valid func(int) bool) (int, error) {
	word, err := c.Word(prompt)
	for {
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(word)
		if convErr == nil && (valid == nil || valid(n)) {
			return n, nil
		}
		c.discardLine()
		word, err = c.Word(retry)
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

func (c *Console) discardLine() {
	_, _ = c.in.ReadString('\n')
}
