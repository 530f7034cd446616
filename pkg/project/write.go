package project

import (
	"io"
	"os"
	"path/filepath"
)

// WriteFile writes the descriptor to path, overwriting any existing file.
// Source roots are rendered relative to path's directory.
//
// The write is atomic from the caller's perspective: the text is rendered
// fully in memory, written to a temp file in the target directory, and
// renamed over path. Any failure removes the temp file and leaves the
// previous contents of path untouched.
func (c *Config) WriteFile(path string) error {
	dir := filepath.Dir(path)
	text, err := c.Render(dir)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".cairo_project-*.toml")
	if err != nil {
		return WrapError(ErrCodeSinkWrite, err, "create descriptor in %s", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return WrapError(ErrCodeSinkWrite, err, "write descriptor %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return WrapError(ErrCodeSinkWrite, err, "write descriptor %s", path)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return WrapError(ErrCodeSinkWrite, err, "write descriptor %s", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return WrapError(ErrCodeSinkWrite, err, "replace descriptor %s", path)
	}
	return nil
}

// Write streams the descriptor to w with absolute source roots; an unbound
// sink has no directory to be relative to.
func (c *Config) Write(w io.Writer) error {
	text, err := c.Render("")
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return WrapError(ErrCodeSinkWrite, err, "write descriptor")
	}
	return nil
}
