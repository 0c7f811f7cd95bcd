package addons

import (
	"context"
	"fmt"
	"io"

	"github.com/skratchdot/open-golang/open"

	"github.com/superfly/herokuctl/iostreams"
)

// Browser opens URLs.
type Browser interface {
	// Open launches url in the user's default handler. It does not wait
	// for the handler to exit.
	Open(ctx context.Context, url string) error
}

// SystemBrowser opens URLs via the default handler of the OS.
type SystemBrowser struct {
	out    io.Writer
	colors *iostreams.ColorScheme
	start  func(string) error
}

// NewSystemBrowser returns a SystemBrowser which announces the URLs it
// opens on io.
func NewSystemBrowser(io *iostreams.IOStreams) *SystemBrowser {
	return &SystemBrowser{
		out:    io.Out,
		colors: io.ColorScheme(),
		start:  open.Start,
	}
}

func (b *SystemBrowser) Open(_ context.Context, url string) error {
	fmt.Fprintf(b.out, "Opening %s...\n", b.colors.Cyan(url))

	if err := b.start(url); err != nil {
		return &OpenError{URL: url, Err: err}
	}

	return nil
}

// OpenError is returned when the OS fails to launch a handler for URL.
type OpenError struct {
	URL string
	Err error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open page %s: %v", e.URL, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

func (e *OpenError) Suggestion() string {
	return fmt.Sprintf("Open %s in your browser.", e.URL)
}

// WriteError is returned when the SSO document for URL cannot be written to
// Path.
type WriteError struct {
	URL  string
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed writing SSO document: %v", e.Err)
	}
	return fmt.Sprintf("failed writing SSO document %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Suggestion() string {
	if e.URL == "" {
		return "Make sure the temporary directory is writable or point TMPDIR to one that is."
	}
	return fmt.Sprintf("Sign in at %s in your browser, or point TMPDIR to a writable directory.", e.URL)
}
