package paths

import (
	"os"
	"path/filepath"

	"github.com/Mavwarf/pwaicons/internal/config"
)

const (
	IconsDir       = "icons"
	MasterFileName = "eta-icon-master.png"
	DirPerm        = 0755
	FilePerm       = 0644
)

// IconFileName returns the output file name for an icon size,
// e.g. "icon-192x192.png".
func IconFileName(s config.IconSize) string {
	return "icon-" + s.Name() + ".png"
}

// IconPath returns the output path for an icon size under root.
func IconPath(root string, s config.IconSize) string {
	return filepath.Join(root, IconsDir, IconFileName(s))
}

// MasterPath returns the path of the master icon under root.
func MasterPath(root string) string {
	return filepath.Join(root, IconsDir, MasterFileName)
}

// EnsureDir creates the icons directory under root if it is missing.
// Existing contents are left untouched.
func EnsureDir(root string) error {
	return os.MkdirAll(filepath.Join(root, IconsDir), DirPerm)
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
