package project

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Render produces the descriptor text with source roots expressed relative
// to outDir, the directory that will contain the descriptor file. An empty
// outDir means there is no reference directory (streaming sink) and paths
// render absolute.
//
// [crate_roots] preserves projection order. The crate-settings tables are
// TOML-encoded; their maps come out in sorted key order, which is equally
// deterministic.
func (c *Config) Render(outDir string) (string, error) {
	var buf bytes.Buffer

	buf.WriteString("[crate_roots]\n")
	for _, entry := range c.CrateRoots {
		rendered := make([]string, len(entry.SourceRoots))
		for i, root := range entry.SourceRoots {
			p, err := renderPath(outDir, root)
			if err != nil {
				return "", err
			}
			rendered[i] = quoteTOML(p)
		}
		if len(rendered) == 1 {
			fmt.Fprintf(&buf, "%s = %s\n", tomlKey(entry.Name), rendered[0])
		} else {
			fmt.Fprintf(&buf, "%s = [%s]\n", tomlKey(entry.Name), strings.Join(rendered, ", "))
		}
	}
	buf.WriteString("\n")

	var tables struct {
		Config struct {
			Global CrateSettings `toml:"global"`
		} `toml:"config"`
	}
	tables.Config.Global = c.Global
	if err := toml.NewEncoder(&buf).Encode(tables); err != nil {
		return "", WrapError(ErrCodeSinkWrite, err, "encode crate settings")
	}

	return buf.String(), nil
}

var bareKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// tomlKey renders a table key, bare when the key allows it.
func tomlKey(s string) string {
	if bareKeyPattern.MatchString(s) {
		return s
	}
	return quoteTOML(s)
}

// quoteTOML renders s as a TOML basic string.
func quoteTOML(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
