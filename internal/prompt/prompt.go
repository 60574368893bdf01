// Package prompt reads validated values from a line-oriented console.
//
// Each read displays a prompt, parses the reply and re-prompts until the
// reply is acceptable. The only errors a Prompter returns come from the
// underlying reader, most commonly io.EOF once input is exhausted.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jgoulah/energytracker/internal/ui"
	"github.com/jgoulah/energytracker/pkg/models"
)

var (
	// ErrNotPositive means the reply parsed but was zero or negative
	ErrNotPositive = errors.New("not positive")
	// ErrOutOfRange means an integer reply fell outside the allowed bounds
	ErrOutOfRange = errors.New("out of range")
)

// Prompter reads replies from in and writes prompts and messages to out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line displays prompt and returns the reply with surrounding whitespace removed.
// A final line without a trailing newline is still returned; io.EOF is only
// reported when nothing at all was read.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PositiveFloat keeps prompting until the reply is a number greater than zero
func (p *Prompter) PositiveFloat(prompt string) (float64, error) {
	for {
		reply, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}

		v, err := ParsePositiveFloat(reply)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, ErrNotPositive):
			ui.Error(p.out, "Please enter a positive number.")
		default:
			ui.Error(p.out, "Invalid input. Please enter a valid number.")
		}
	}
}

// Int keeps prompting until the reply is an integer within the given bounds
func (p *Prompter) Int(prompt string, opts ...IntOption) (int, error) {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}

	for {
		reply, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}

		v, err := b.parse(reply)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, ErrOutOfRange):
			ui.Error(p.out, "Invalid selection. Please try again.")
		default:
			ui.Error(p.out, "Invalid input. Please enter a number.")
		}
	}
}

// BoundedInt is Int with both bounds set, inclusive
func (p *Prompter) BoundedInt(prompt string, lo, hi int) (int, error) {
	return p.Int(prompt, Min(lo), Max(hi))
}

// ParsePositiveFloat parses s as a finite number greater than zero
func ParsePositiveFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", s, models.ErrNotNumber)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%v: %w", v, ErrNotPositive)
	}
	return v, nil
}

// IntOption constrains the values Int accepts
type IntOption func(*bounds)

// Min rejects replies below n
func Min(n int) IntOption {
	return func(b *bounds) { b.min = &n }
}

// Max rejects replies above n
func Max(n int) IntOption {
	return func(b *bounds) { b.max = &n }
}

type bounds struct {
	min, max *int
}

func (b bounds) parse(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, models.ErrNotNumber)
	}
	if (b.min != nil && v < *b.min) || (b.max != nil && v > *b.max) {
		return 0, fmt.Errorf("%d: %w", v, ErrOutOfRange)
	}
	return v, nil
}

// ParseInt parses s as an integer and checks it against opts
func ParseInt(s string, opts ...IntOption) (int, error) {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}
	return b.parse(s)
}
