package config

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/randalmurphal/lazyconf/testutil"
)

func noEnv(string) (string, bool) { return "", false }

func TestResolver_GlobalPath(t *testing.T) {
	resolver := NewResolver(ResolverConfig{
		GlobalConfigDir: "testapp",
		GitRootFinder:   func(string) (string, error) { return "", nil },
		LookupEnv:       noEnv,
	})

	want := "{HOME}/.config/testapp/config.lz"
	if got := resolver.GlobalPath(); got != want {
		t.Errorf("GlobalPath() = %q, want %q", got, want)
	}
	if resolver.LocalPath() != "" {
		t.Errorf("LocalPath() = %q, want empty without a git root", resolver.LocalPath())
	}
}

func TestResolver_GlobalConfigFile(t *testing.T) {
	resolver := NewResolver(ResolverConfig{
		GlobalConfigDir:  "testapp",
		GlobalConfigFile: "settings.toml",
		GitRootFinder:    func(string) (string, error) { return "", nil },
		LookupEnv:        noEnv,
	})

	if got := resolver.GlobalPath(); got != "{HOME}/.config/testapp/settings.toml" {
		t.Errorf("GlobalPath() = %q", got)
	}
}

func TestResolver_XDGConfigHome(t *testing.T) {
	tests := []struct {
		name     string
		xdg      string
		want     string
		warnings int
	}{
		{"absolute", "/xdg", "{XDG_CONFIG_HOME}/testapp/config.lz", 0},
		{"relative ignored", "xdg", "{HOME}/.config/testapp/config.lz", 1},
		{"empty ignored", "", "{HOME}/.config/testapp/config.lz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			resolver := NewResolver(ResolverConfig{
				GlobalConfigDir: "testapp",
				GitRootFinder:   func(string) (string, error) { return "", nil },
				LookupEnv:       testutil.Lookup(map[string]string{"XDG_CONFIG_HOME": tt.xdg}),
				ErrWriter:       &errBuf,
			})

			if got := resolver.GlobalPath(); got != tt.want {
				t.Errorf("GlobalPath() = %q, want %q", got, tt.want)
			}
			if len(resolver.Warnings) != tt.warnings {
				t.Errorf("Warnings = %v, want %d", resolver.Warnings, tt.warnings)
			}
			if tt.warnings > 0 && !strings.Contains(errBuf.String(), "Warning:") {
				t.Errorf("expected warning output, got %q", errBuf.String())
			}
		})
	}
}

func TestResolver_LocalConfig(t *testing.T) {
	root := testutil.FakeGitRoot(t, map[string]string{
		".myapp.lz":       "App:\n    name:local\n",
		"pkg/sub/main.go": "package sub\n",
	})

	resolver := NewResolver(ResolverConfig{
		LocalConfigName: ".myapp.lz",
		StartDir:        filepath.Join(root, "pkg", "sub"),
		LookupEnv:       noEnv,
	})

	if got := resolver.GitRoot(); got != root {
		t.Errorf("GitRoot() = %q, want %q", got, root)
	}
	want := filepath.Join(root, ".myapp.lz")
	if got := resolver.LocalPath(); got != want {
		t.Errorf("LocalPath() = %q, want %q", got, want)
	}
}

func TestResolver_GitRootFinder(t *testing.T) {
	resolver := NewResolver(ResolverConfig{
		LocalConfigName: ".myapp.lz",
		GitRootFinder: func(string) (string, error) {
			return "/repo", nil
		},
		LookupEnv: noEnv,
	})

	if got := resolver.LocalPath(); got != filepath.Join("/repo", ".myapp.lz") {
		t.Errorf("LocalPath() = %q", got)
	}

	failing := NewResolver(ResolverConfig{
		LocalConfigName: ".myapp.lz",
		GitRootFinder: func(string) (string, error) {
			return "", errors.New("not a repo")
		},
		LookupEnv: noEnv,
	})
	if failing.LocalPath() != "" || failing.GitRoot() != "" {
		t.Error("finder error should disable local config")
	}
}

func TestResolver_Locations(t *testing.T) {
	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults: []string{"/etc/myapp.lz", " ", "{HOME}/.myapp.lz"},
	}, "{HOME}/.config/myapp/config.lz", "/repo/.myapp.lz")

	want := []Location{
		{Path: "/repo/.myapp.lz", Source: SourceLocal},
		{Path: "{HOME}/.config/myapp/config.lz", Source: SourceGlobal},
		{Path: "/etc/myapp.lz", Source: SourceDefault},
		{Path: "{HOME}/.myapp.lz", Source: SourceDefault},
	}
	if diff := cmp.Diff(want, resolver.Locations()); diff != "" {
		t.Errorf("Locations() mismatch (-want +got):\n%s", diff)
	}

	wantPaths := []string{"/repo/.myapp.lz", "{HOME}/.config/myapp/config.lz", "/etc/myapp.lz", "{HOME}/.myapp.lz"}
	if diff := cmp.Diff(wantPaths, resolver.Paths()); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolver_NoLocations(t *testing.T) {
	resolver := NewResolverWithPaths(ResolverConfig{}, "", "")
	if got := resolver.Paths(); len(got) != 0 {
		t.Errorf("Paths() = %v, want empty", got)
	}
}

func TestFindGitRoot(t *testing.T) {
	root := testutil.FakeGitRoot(t, map[string]string{"a/b/c.txt": "x"})

	got, err := findGitRoot(filepath.Join(root, "a", "b"))
	if err != nil {
		t.Fatalf("findGitRoot() error = %v", err)
	}
	if got != root {
		t.Errorf("findGitRoot() = %q, want %q", got, root)
	}

	outside := testutil.WriteTree(t, map[string]string{"x.txt": "x"})
	got, err = findGitRoot(outside)
	if err != nil {
		t.Fatalf("findGitRoot() error = %v", err)
	}
	// A temp dir may itself live inside a repository; it must not be the
	// temp dir itself.
	if got == outside {
		t.Errorf("findGitRoot() = %q, want a directory with .git", got)
	}
}
