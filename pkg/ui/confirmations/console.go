// Package confirmations provides the console implementation of the yes/no
// prompt used before a non-root install.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/devboot/nvboot/pkg/errors"
)

// ConsoleConfirmer asks questions on a terminal
type ConsoleConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleConfirmer creates a confirmer reading answers from in and
// writing prompts to out
func NewConsoleConfirmer(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints question with a [y/N] suffix and reads one line. Only "y"
// and "yes" approve; an empty answer declines.
func (c *ConsoleConfirmer) Confirm(question string) (bool, error) {
	if _, err := fmt.Fprintf(c.out, "%s [y/N]: ", question); err != nil {
		return false, errors.Wrap(err, errors.ErrInternal, "failed to write prompt")
	}

	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, errors.Wrap(err, errors.ErrInvalidInput, "failed to read user input")
	}

	response := strings.ToLower(strings.TrimSpace(line))
	return response == "y" || response == "yes", nil
}
