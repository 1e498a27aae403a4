package tracker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Console reads answers line by line and writes prompts and results.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	fail *color.Color
	ok   *color.Color
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		fail: color.New(color.FgRed),
		ok:   color.New(color.FgGreen),
	}
}

// Prompt writes msg and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once the input is exhausted.
func (c *Console) Prompt(msg string) (string, error) {
	fmt.Fprint(c.out, msg)
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Errorf prints an "Error: " prefixed line.
func (c *Console) Errorf(format string, a ...any) {
	c.fail.Fprintf(c.out, "Error: "+format+"\n", a...)
}

func (c *Console) Successf(format string, a ...any) {
	c.ok.Fprintf(c.out, format+"\n", a...)
}
