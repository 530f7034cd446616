package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRootCommandFlags(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"output", "package", "no-deps", "watch"} {
		if root.Flags().Lookup(name) == nil {
			t.Errorf("flag --%s not registered", name)
		}
	}
	if root.Use != "scarb-eject" {
		t.Errorf("Use = %q", root.Use)
	}
}

func TestWatchRejectsStdoutSink(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--watch", "--output", "-"})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	err := root.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want watch/stdout conflict")
	}
	if !strings.Contains(err.Error(), "--watch") {
		t.Errorf("error = %v, want mention of --watch", err)
	}
}

// fakeScarb installs a scarb stand-in that prints metadata for a two-package
// workspace rooted at dir: app (the sole member) depending on lib.
func fakeScarb(t *testing.T, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake scarb script requires a POSIX shell")
	}

	appID := "app 0.1.0 (path+file://" + dir + "/app)"
	libID := "lib 0.1.0 (path+file://" + dir + "/lib)"
	metadata := fmt.Sprintf(`{"version":1,"current_profile":"dev",`+
		`"workspace":{"root":%q,"manifest_path":%q,"members":[%q]},`+
		`"packages":[`+
		`{"id":%q,"name":"app","version":"0.1.0","edition":"2024_07","root":%q,"manifest_path":%q,"experimental_features":[],"targets":[{"kind":"lib","name":"app","source_path":%q}]},`+
		`{"id":%q,"name":"lib","version":"0.1.0","root":%q,"manifest_path":%q,"experimental_features":[],"targets":[{"kind":"lib","name":"lib","source_path":%q}]}`+
		`],`+
		`"resolve":{"nodes":[{"id":%q,"dependencies":[%q]},{"id":%q,"dependencies":[]}]}}`,
		dir, dir+"/Scarb.toml", appID,
		appID, dir+"/app", dir+"/app/Scarb.toml", dir+"/app/src/lib.cairo",
		libID, dir+"/lib", dir+"/lib/Scarb.toml", dir+"/lib/src/lib.cairo",
		appID, libID, libID)

	script := filepath.Join(dir, "scarb")
	body := "#!/bin/sh\ncat <<'EOF'\n" + metadata + "\nEOF\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCARB", script)
}

func TestEjectEndToEnd(t *testing.T) {
	dir := t.TempDir()
	fakeScarb(t, dir)

	output := filepath.Join(dir, "cairo_project.toml")
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--output", output})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read descriptor: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"[crate_roots]",
		`app = "app/src"`,
		`lib = "lib/src"`,
		`edition = "2024_07"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("descriptor missing %q:\n%s", want, text)
		}
	}
}

func TestEjectDefaultOutputBesideManifest(t *testing.T) {
	dir := t.TempDir()
	fakeScarb(t, dir)

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "cairo_project.toml")); err != nil {
		t.Errorf("default descriptor location not written: %v", err)
	}
}

func TestEjectUnknownPackage(t *testing.T) {
	dir := t.TempDir()
	fakeScarb(t, dir)

	output := filepath.Join(dir, "out", "cairo_project.toml")
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"--package", "ghost", "--output", output})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	if err := root.Execute(); err == nil {
		t.Fatal("Execute() error = nil, want unknown package")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("descriptor written despite failed run")
	}
}
