// Package generator writes the manifest icon set, either by resampling a
// master image or by drawing a placeholder.
package generator

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/Mavwarf/pwaicons/internal/config"
	"github.com/Mavwarf/pwaicons/internal/console"
	"github.com/Mavwarf/pwaicons/internal/icon"
	"github.com/Mavwarf/pwaicons/internal/paths"
	"github.com/Mavwarf/pwaicons/internal/resize"
)

// Outcome records what happened for one size. Err is nil on success.
type Outcome struct {
	Size config.IconSize
	Path string
	Err  error
}

// Result holds one Outcome per requested size, in request order.
type Result []Outcome

// Failed returns the number of sizes that produced no file.
func (r Result) Failed() int {
	n := 0
	for _, o := range r {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// OK reports whether every size succeeded.
func (r Result) OK() bool { return r.Failed() == 0 }

// Resize resamples the master icon under root to every size and writes
// root/icons/icon-{s}x{s}.png. A missing or unreadable master, or a failed
// write, is recorded against each affected size and the batch carries on.
// The closing manifest is built from what is actually on disk.
func Resize(root string, sizes []config.IconSize, rep *console.Reporter) Result {
	res := make(Result, 0, len(sizes))

	// The master is loaded once; every size shares the same failure if it
	// cannot be read.
	var master *image.RGBA
	loadErr := paths.EnsureDir(root)
	if loadErr == nil {
		var src image.Image
		if src, loadErr = resize.Load(paths.MasterPath(root)); loadErr == nil {
			master = resize.ToRGBA(src)
		}
	}

	for _, s := range sizes {
		rep.Start(s)
		out := Outcome{Size: s, Path: paths.IconPath(root, s)}
		if loadErr != nil {
			out.Err = loadErr
		} else {
			out.Err = writePNG(out.Path, resize.Square(master, int(s)))
		}
		if out.Err != nil {
			rep.Failed(out.Path, out.Err)
		} else {
			rep.Saved(out.Path)
		}
		res = append(res, out)
	}

	rep.Manifest(Manifest(root, sizes))
	return res
}

// Placeholder draws the placeholder icon at every size. Any error stops
// the run and is returned; nothing after the failing size is written.
func Placeholder(root string, sizes []config.IconSize, rep *console.Reporter) error {
	if err := paths.EnsureDir(root); err != nil {
		return err
	}
	entries := make([]console.Entry, 0, len(sizes))
	for _, s := range sizes {
		rep.Start(s)
		img, err := icon.Draw(int(s))
		if err != nil {
			return fmt.Errorf("draw %s: %w", s.Name(), err)
		}
		p := paths.IconPath(root, s)
		if err := writePNG(p, img); err != nil {
			return err
		}
		rep.Saved(p)
		entries = append(entries, console.Entry{Path: p, OK: true})
	}
	rep.Manifest(entries)
	return nil
}

// Manifest lists the expected output for each size and whether the file
// is present on disk.
func Manifest(root string, sizes []config.IconSize) []console.Entry {
	entries := make([]console.Entry, 0, len(sizes))
	for _, s := range sizes {
		p := paths.IconPath(root, s)
		entries = append(entries, console.Entry{Path: p, OK: paths.Exists(p)})
	}
	return entries
}

func writePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
