// Package iostreams wraps the standard streams a command writes to along with
// the terminal capabilities they offer.
package iostreams

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

type IOStreams struct {
	In     io.ReadCloser
	Out    io.Writer
	ErrOut io.Writer

	colorEnabled bool

	progressIndicatorEnabled bool
	progressMu               sync.Mutex
	progressIndicator        *spinner.Spinner
}

func (s *IOStreams) ColorEnabled() bool {
	return s.colorEnabled
}

func (s *IOStreams) ColorScheme() *ColorScheme {
	return NewColorScheme(s.colorEnabled)
}

// StartProgressIndicatorMsg starts a spinner on stderr with the given
// suffix, or updates the suffix of the running one. It is a no-op unless
// both stdout and stderr are terminals.
func (s *IOStreams) StartProgressIndicatorMsg(msg string) {
	if !s.progressIndicatorEnabled {
		return
	}

	s.progressMu.Lock()
	defer s.progressMu.Unlock()

	if s.progressIndicator != nil {
		s.progressIndicator.Suffix = suffix(msg)
		return
	}

	sp := spinner.New(spinner.CharSets[11], 400*time.Millisecond, spinner.WithWriter(s.ErrOut))
	sp.Suffix = suffix(msg)
	sp.Start()

	s.progressIndicator = sp
}

// StopProgressIndicator stops the spinner, if any. It is safe to call more
// than once.
func (s *IOStreams) StopProgressIndicator() {
	s.progressMu.Lock()
	defer s.progressMu.Unlock()

	if s.progressIndicator == nil {
		return
	}

	s.progressIndicator.Stop()
	s.progressIndicator = nil
}

func suffix(msg string) string {
	if msg == "" {
		return ""
	}
	return " " + msg
}

// System returns the IOStreams of the running process.
func System() *IOStreams {
	stdoutIsTTY := isTerminal(os.Stdout)
	stderrIsTTY := isTerminal(os.Stderr)

	return &IOStreams{
		In:                       os.Stdin,
		Out:                      colorable.NewColorable(os.Stdout),
		ErrOut:                   colorable.NewColorable(os.Stderr),
		colorEnabled:             colorEnvForced() || (!colorEnvDisabled() && stdoutIsTTY),
		progressIndicatorEnabled: stdoutIsTTY && stderrIsTTY,
	}
}

// Test returns IOStreams backed by buffers, along with the buffers.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	return &IOStreams{
		In:     io.NopCloser(in),
		Out:    out,
		ErrOut: errOut,
	}, in, out, errOut
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
