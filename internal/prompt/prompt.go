// Package prompt reads numeric answers from an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when an answer does not parse as the
// requested kind of number.
var ErrInvalidNumber = errors.New("digite um número válido")

// Prompter writes a label, then reads and parses one line of input.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading answers from in and writing labels to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints label and returns the next input line without surrounding
// whitespace. A final line without a newline is accepted.
func (p *Prompter) Line(label string) (string, error) {
	if _, err := fmt.Fprint(p.out, label); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("falha ao ler a linha: %w", err)
		}
		if line == "" {
			return "", fmt.Errorf("falha ao ler a linha: %w", io.ErrUnexpectedEOF)
		}
	}
	return strings.TrimSpace(line), nil
}

// Float prompts for a real number.
func (p *Prompter) Float(label string) (float64, error) {
	raw, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return value, nil
}

// Int prompts for a whole number.
func (p *Prompter) Int(label string) (int, error) {
	raw, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return value, nil
}

// Uint prompts for a non-negative whole number, such as a count of
// dependents. A minus sign is rejected.
func (p *Prompter) Uint(label string) (int, error) {
	raw, err := p.Line(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return int(value), nil
}
