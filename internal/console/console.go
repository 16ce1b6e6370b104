// Package console provides line-oriented terminal I/O for exercises.
// It hides whether input comes from an interactive terminal, a pipe,
// or a test buffer: callers read one line at a time and write prompts
// without checking every write for errors.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	errs "drills/internal/errors"
	"drills/util"
)

// Console reads newline-terminated lines and writes text.  The first
// write failure is remembered and reported by the next read and by
// [Console.Err]; later writes become no-ops.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	fd  int  // input file descriptor when in is an *os.File, else -1
	tty bool // input is an interactive terminal
	err error
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
	if f, ok := in.(*os.File); ok {
		c.fd = int(f.Fd())
		c.tty = term.IsTerminal(c.fd)
	}
	return c
}

// IsTerminal reports whether input comes from an interactive terminal.
func (c *Console) IsTerminal() bool { return c.tty }

// ReadLine reads one line and returns it without the line terminator.
// A final line without a newline is returned as-is; end of input with
// no pending data yields an error matching [errs.ErrInputClosed].
func (c *Console) ReadLine() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return util.ChompLine(line), nil
		}
		return "", errs.Wrap("read", err)
	}
	return util.ChompLine(line), nil
}

// ReadSecret reads one line without echoing it when input is a
// terminal, and falls back to [Console.ReadLine] otherwise.
func (c *Console) ReadSecret() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if !c.tty {
		return c.ReadLine()
	}
	pass, err := term.ReadPassword(c.fd)
	c.Println() // the user's Enter was swallowed along with the echo
	if err != nil {
		return "", errs.Wrap("read-secret", err)
	}
	return string(pass), nil
}

// Print writes a to the output with [fmt.Fprint] semantics.
func (c *Console) Print(a ...interface{}) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprint(c.out, a...); err != nil {
		c.err = errs.Wrap("write", err)
	}
}

// Printf writes a formatted string to the output.
func (c *Console) Printf(format string, a ...interface{}) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintf(c.out, format, a...); err != nil {
		c.err = errs.Wrap("write", err)
	}
}

// Println writes a followed by a newline.
func (c *Console) Println(a ...interface{}) {
	if c.err != nil {
		return
	}
	if _, err := fmt.Fprintln(c.out, a...); err != nil {
		c.err = errs.Wrap("write", err)
	}
}

// Err returns the first write error, if any.
func (c *Console) Err() error { return c.err }
