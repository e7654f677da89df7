package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/geopar/figure"
)

var errBadAnswer = errors.New("bad input: type y or n")

// prompter asks whether to apply angle pairing. Concurrent solves share one
// prompter; questions are asked one at a time.
type prompter struct {
	mu          sync.Mutex
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer, interactive bool) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out, interactive: interactive}
}

// decider returns a solve.Decider bound to the figure named name.
func (p *prompter) decider(name string) func(context.Context, *figure.Mesh) (bool, error) {
	return func(ctx context.Context, m *figure.Mesh) (bool, error) {
		p.mu.Lock()
		defer p.mu.Unlock()

		fmt.Fprintln(p.out, renderFigure(name+" after the 180° and 360° rules", m))
		title := fmt.Sprintf("%s: %d angles unknown. Apply angle pairing?", name, m.UnknownCount())
		if p.interactive {
			return p.confirm(ctx, title)
		}

		return p.readAnswer(title)
	}
}

func (p *prompter) confirm(ctx context.Context, title string) (bool, error) {
	apply := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&apply),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return false, err
	}

	return apply, nil
}

// readAnswer reads one "y" or "n" line.
func (p *prompter) readAnswer(title string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", title)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return false, fmt.Errorf("%w: %v", errBadAnswer, err)
	}
	fmt.Fprintln(p.out)

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: got %q", errBadAnswer, strings.TrimSpace(line))
	}
}

// aborted reports whether err means the user gave up on the whole batch.
func aborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled)
}

// isTerminal reports whether in is a terminal.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
