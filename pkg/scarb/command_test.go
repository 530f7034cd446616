package scarb

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMetadataSkipsDiagnosticLines(t *testing.T) {
	out := "warn: something the toolchain printed\n" +
		sampleMetadataJSONCompact() + "\n" +
		"trailing noise\n"

	md, err := parseMetadata([]byte(out))
	require.NoError(t, err)
	require.Equal(t, "/ws", md.Workspace.Root)
}

func TestParseMetadataRejectsWrongVersion(t *testing.T) {
	_, err := parseMetadata([]byte(`{"version": 2}`))
	require.ErrorContains(t, err, "format version 2")
}

func TestParseMetadataNoDocument(t *testing.T) {
	_, err := parseMetadata([]byte("error: no workspace found\n"))
	require.ErrorContains(t, err, "no metadata document")
}

// sampleMetadataJSONCompact flattens the shared sample document onto one
// line, the way Scarb emits it.
func sampleMetadataJSONCompact() string {
	out := ""
	for _, r := range sampleMetadataJSON {
		if r != '\n' {
			out += string(r)
		}
	}
	return out
}

func TestMetadataCommandExec(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake scarb script requires a POSIX shell")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "scarb")
	body := "#!/bin/sh\n" +
		"[ \"$1\" = metadata ] || exit 64\n" +
		"echo 'warn: ignore me'\n" +
		"cat <<'EOF'\n" + sampleMetadataJSONCompact() + "\nEOF\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	t.Setenv("SCARB", script)

	md, err := NewMetadataCommand().Exec(context.Background())
	require.NoError(t, err)
	require.Equal(t, FormatVersion, md.Version)
	require.Len(t, md.Packages, 2)
}

func TestMetadataCommandExecFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fake scarb script requires a POSIX shell")
	}

	dir := t.TempDir()
	script := filepath.Join(dir, "scarb")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexit 1\n"), 0o755))
	t.Setenv("SCARB", script)

	_, err := NewMetadataCommand().Exec(context.Background())
	require.Error(t, err)
}
