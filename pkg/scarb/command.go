package scarb

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// defaultBinary is the Scarb executable looked up on PATH when the SCARB
// environment variable is not set.
const defaultBinary = "scarb"

// MetadataCommand runs `scarb metadata` and decodes its output.
//
// The zero value is not usable; construct with NewMetadataCommand and chain
// the builder methods:
//
//	md, err := scarb.NewMetadataCommand().InheritStderr().Exec(ctx)
type MetadataCommand struct {
	binary        string
	manifestPath  string
	inheritStderr bool
}

// NewMetadataCommand creates a metadata command using the binary named by
// the SCARB environment variable, falling back to "scarb" on PATH.
func NewMetadataCommand() *MetadataCommand {
	binary := os.Getenv("SCARB")
	if binary == "" {
		binary = defaultBinary
	}
	return &MetadataCommand{binary: binary}
}

// ManifestPath points the command at an explicit Scarb.toml instead of the
// one discovered from the working directory.
func (c *MetadataCommand) ManifestPath(path string) *MetadataCommand {
	c.manifestPath = path
	return c
}

// InheritStderr forwards Scarb's stderr (progress bars, warnings) to this
// process's stderr.
func (c *MetadataCommand) InheritStderr() *MetadataCommand {
	c.inheritStderr = true
	return c
}

// Exec runs the metadata command and decodes the result. Scarb may print
// diagnostic lines around the metadata document, so stdout is scanned for
// the first JSON object line; its format version must match FormatVersion.
func (c *MetadataCommand) Exec(ctx context.Context) (*Metadata, error) {
	args := []string{"metadata", "--format-version", strconv.Itoa(FormatVersion)}
	if c.manifestPath != "" {
		args = append(args, "--manifest-path", c.manifestPath)
	}

	cmd := exec.CommandContext(ctx, c.binary, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if c.inheritStderr {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s %s: %w", c.binary, strings.Join(args, " "), err)
	}

	return parseMetadata(stdout.Bytes())
}

// parseMetadata extracts the metadata JSON object from raw command output.
func parseMetadata(out []byte) (*Metadata, error) {
	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] != '{' {
			continue
		}
		var md Metadata
		if err := json.Unmarshal(line, &md); err != nil {
			return nil, fmt.Errorf("decode scarb metadata: %w", err)
		}
		if md.Version != FormatVersion {
			return nil, fmt.Errorf("unsupported scarb metadata format version %d (want %d)", md.Version, FormatVersion)
		}
		return &md, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scarb metadata: %w", err)
	}
	return nil, fmt.Errorf("scarb printed no metadata document")
}
