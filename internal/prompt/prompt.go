// Package prompt collects a metric selection interactively from a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/cvsscalc/internal/cvss"
)

// ErrClosed is returned when input ends before an answer is read.
var ErrClosed = errors.New("input closed")

// Collector asks numbered questions on out and reads answers from in.
type Collector struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewCollector returns a Collector reading lines from in.
func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{in: bufio.NewScanner(in), out: out}
}

// ReadLine prints label and returns the next trimmed input line.
func (c *Collector) ReadLine(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("prompt.ReadLine: %w", err)
		}
		return "", ErrClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Choose lists options and returns the zero-based index picked. Non-numeric
// or out-of-range answers repeat the question.
func (c *Collector) Choose(title string, options []string) (int, error) {
	for {
		fmt.Fprintf(c.out, "\n%s:\n", title)
		for i, o := range options {
			fmt.Fprintf(c.out, "  %d. %s\n", i+1, o)
		}
		answer, err := c.ReadLine(fmt.Sprintf("Select %s (1-%d): ", title, len(options)))
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(c.out, "❌ Please enter a valid number")
			continue
		}
		if n < 1 || n > len(options) {
			fmt.Fprintf(c.out, "❌ Please enter a number between 1 and %d\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

// Selection asks for all eight base metrics in vector order.
func (c *Collector) Selection() (cvss.Selection, error) {
	var sel cvss.Selection
	for _, m := range cvss.Metrics() {
		names := make([]string, len(m.Options))
		for i, o := range m.Options {
			names[i] = o.Value
		}
		title := m.Name
		if m.Key == cvss.KeyConfidentiality || m.Key == cvss.KeyIntegrity || m.Key == cvss.KeyAvailability {
			title += " Impact"
		}
		idx, err := c.Choose(title, names)
		if err != nil {
			return sel, fmt.Errorf("prompt.Selection: %s: %w", m.Name, err)
		}
		if err := sel.Set(m.Key, names[idx]); err != nil {
			return sel, err
		}
	}
	return sel, nil
}
