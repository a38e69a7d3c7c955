package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/oden/cli/cmd"
	"github.com/ardnew/oden/pkg"
)

// setupDirs points the configuration and cache directories into a
// temporary directory and returns the configuration file path.
func setupDirs(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	t.Setenv(pkg.SearchPathEnv, "")

	return configPath(baseConfig)
}

func noExit(t *testing.T) func(int) {
	return func(code int) { t.Fatalf("exit(%d)", code) }
}

func TestRunVersion(t *testing.T) {
	setupDirs(t)

	var out bytes.Buffer

	ctx := cmd.WithOutput(t.Context(), &out)
	if err := Run(ctx, noExit(t), "version"); err != nil {
		t.Fatal(err)
	}

	if want := pkg.Name + " " + pkg.Version() + "\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	if _, err := os.Stat(cacheDir()); err != nil {
		t.Errorf("cache directory not created: %v", err)
	}
}

func TestRunInit(t *testing.T) {
	conf := setupDirs(t)

	if err := Run(t.Context(), noExit(t), "init"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(conf)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(string(data), "version: "+pkg.Version()+"\n") ||
		!strings.Contains(string(data), "\nlog-level: warn\n") {
		t.Errorf("config =\n%s", data)
	}

	if err := Run(t.Context(), noExit(t), "init"); err == nil {
		t.Error("second init succeeded without --force")
	}

	if err := Run(t.Context(), noExit(t), "init", "--force"); err != nil {
		t.Error(err)
	}
}

func TestRunBuildConfigInclude(t *testing.T) {
	conf := setupDirs(t)

	parts := t.TempDir()
	if err := os.WriteFile(filepath.Join(parts, "bracket"+pkg.Extension),
		[]byte("part.add(Cuboid(2mm, 1mm, 1mm))\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := os.MkdirAll(filepath.Dir(conf), 0o700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(conf, []byte("include: ["+parts+"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(t.TempDir(), "bracket.stl")

	var out bytes.Buffer

	ctx := cmd.WithOutput(t.Context(), &out)
	if err := Run(ctx, noExit(t), "build", "-s", "bracket", "-t", target); err != nil {
		t.Fatalf("Run() error = %v\n%s", err, out.String())
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}

	if info.Size() != 84+50*12 {
		t.Errorf("target size = %d", info.Size())
	}
}

func TestRunInvalidFlag(t *testing.T) {
	setupDirs(t)

	if err := Run(t.Context(), noExit(t), "version", "--no-such-flag"); err == nil {
		t.Error("Run() accepted an unknown flag")
	}
}
