// Package console prints human-readable progress for icon generation.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Mavwarf/pwaicons/internal/config"
)

const (
	ansiGreen = "\033[32m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Reporter writes one line per generation event. Markers are colored only
// when the destination is a terminal.
type Reporter struct {
	w     io.Writer
	color bool
}

// New returns a Reporter writing to w.
func New(w io.Writer) *Reporter {
	color := false
	if f, ok := w.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return &Reporter{w: w, color: color}
}

// Entry is one line of the final manifest.
type Entry struct {
	Path string
	OK   bool
}

func (r *Reporter) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiReset
}

// Start announces work on a size.
func (r *Reporter) Start(s config.IconSize) {
	fmt.Fprintf(r.w, "Creating %s icon...\n", s.Name())
}

// Saved reports a written file.
func (r *Reporter) Saved(path string) {
	fmt.Fprintf(r.w, "%s Saved %s\n", r.paint(ansiGreen, "✓"), path)
}

// Failed reports a size that produced no file.
func (r *Reporter) Failed(path string, err error) {
	fmt.Fprintf(r.w, "%s Failed to create %s: %v\n", r.paint(ansiRed, "✗"), path, err)
}

// Manifest prints the closing summary and lists every expected file,
// flagging the ones that are missing.
func (r *Reporter) Manifest(entries []Entry) {
	ok := 0
	for _, e := range entries {
		if e.OK {
			ok++
		}
	}
	fmt.Fprintln(r.w)
	if ok == len(entries) {
		fmt.Fprintf(r.w, "%s All %d icons generated successfully\n", r.paint(ansiGreen, "✓"), ok)
	} else {
		fmt.Fprintf(r.w, "%s Generated %d of %d icons\n", r.paint(ansiRed, "✗"), ok, len(entries))
	}
	fmt.Fprintln(r.w, "Icons:")
	for _, e := range entries {
		if e.OK {
			fmt.Fprintf(r.w, "  - %s\n", e.Path)
		} else {
			fmt.Fprintf(r.w, "  - %s (FAILED)\n", e.Path)
		}
	}
}
