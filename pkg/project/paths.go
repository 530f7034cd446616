package project

import "path/filepath"

// renderPath expresses a source root for the descriptor text.
//
// With a non-empty outDir (the directory that will contain the descriptor
// file) the result is the shortest relative path from outDir to src. When no
// relative path exists (distinct volumes, or a relative/absolute mix that
// cannot be reconciled) the absolute path is used instead. With an empty
// outDir (streaming sink, no reference directory) paths are always absolute.
//
// Emitted separators are forward slashes on every platform; the descriptor
// is consumed cross-platform.
func renderPath(outDir, src string) (string, error) {
	abs, err := filepath.Abs(src)
	if err != nil {
		return "", WrapError(ErrCodePathResolution, err, "resolve source root %s", src)
	}
	if outDir == "" {
		return filepath.ToSlash(abs), nil
	}

	absDir, err := filepath.Abs(outDir)
	if err != nil {
		return "", WrapError(ErrCodePathResolution, err, "resolve output directory %s", outDir)
	}
	rel, err := filepath.Rel(absDir, abs)
	if err != nil {
		// No common ancestor. The defined fallback is the absolute path.
		return filepath.ToSlash(abs), nil
	}
	return filepath.ToSlash(rel), nil
}
