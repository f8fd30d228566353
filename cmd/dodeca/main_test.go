package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smasonuk/dodeca"
)

func TestMain(m *testing.M) {
	dodeca.SetLogger(nil)
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestInfo(t *testing.T) {
	out := execute(t, "info")
	for _, want := range []string{
		"Vertices: 20",
		"Indices: 108",
		"Triangles: 36",
		"Diagnostics: 0 errors, 0 notices",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestRender(t *testing.T) {
	dir := t.TempDir()
	out := execute(t, "render", "--frames", "5", "--save-every", "2", "--out", dir, "--width", "54", "--height", "96")
	if !strings.Contains(out, "saved 2") {
		t.Errorf("unexpected output: %s", out)
	}
	for _, name := range []string{"frame_0000.png", "frame_0001.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}
