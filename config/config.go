package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ResolverConfig configures config file discovery.
type ResolverConfig struct {
	// GlobalConfigDir is the name of the directory under the user config
	// directory where the global config is stored.
	// For example, "myapp" results in {HOME}/.config/myapp/config.lz.
	GlobalConfigDir string

	// GlobalConfigFile is the filename for global config.
	// Defaults to "config.lz" if empty.
	GlobalConfigFile string

	// LocalConfigName is the filename for local config in the git root.
	// For example, ".myapp.lz".
	LocalConfigName string

	// Defaults lists extra locations searched after local and global config,
	// for example "/etc/myapp.lz". They may contain {VAR} references.
	Defaults []string

	// StartDir is where git root detection begins. Defaults to ".".
	StartDir string

	// GitRootFinder is a function that finds the git root directory.
	// If nil, uses a simple git root detection.
	GitRootFinder func(startDir string) (string, error)

	// LookupEnv reads XDG_CONFIG_HOME. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)

	// ErrWriter is where warnings are written.
	// Defaults to os.Stderr if nil.
	ErrWriter io.Writer
}

func (c ResolverConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.lz"
}

func (c ResolverConfig) startDir() string {
	if c.StartDir != "" {
		return c.StartDir
	}
	return "."
}

// Location is a candidate config file and the layer it belongs to.
type Location struct {
	Path   string
	Source Source
}

// Resolver works out where an application's config files live.
type Resolver struct {
	config     ResolverConfig
	globalPath string
	localPath  string
	gitRoot    string

	// Warnings collects non-fatal issues found during discovery.
	Warnings []string
}

// NewResolver creates a new location resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	resolver := &Resolver{
		config: cfg,
	}

	// Set default error writer
	if cfg.ErrWriter == nil {
		resolver.config.ErrWriter = os.Stderr
	}
	if cfg.LookupEnv == nil {
		resolver.config.LookupEnv = os.LookupEnv
	}

	// Find git root and local config
	finder := cfg.GitRootFinder
	if finder == nil {
		finder = findGitRoot
	}
	if root, err := finder(resolver.config.startDir()); err == nil && root != "" {
		resolver.gitRoot = root
		if cfg.LocalConfigName != "" {
			resolver.localPath = filepath.Join(root, cfg.LocalConfigName)
		}
	}

	if cfg.GlobalConfigDir != "" {
		resolver.globalPath = resolver.userConfigDir() + "/" + cfg.GlobalConfigDir + "/" + resolver.config.globalConfigFile()
	}

	return resolver
}

// NewResolverWithPaths creates a resolver with explicit global and local paths.
// This is useful for testing or when paths are known ahead of time.
func NewResolverWithPaths(cfg ResolverConfig, globalPath, localPath string) *Resolver {
	resolver := &Resolver{
		config:     cfg,
		globalPath: globalPath,
		localPath:  localPath,
	}

	// Set default error writer
	if cfg.ErrWriter == nil {
		resolver.config.ErrWriter = os.Stderr
	}

	return resolver
}

// warn adds a warning and optionally prints it.
func (r *Resolver) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	if r.config.ErrWriter != nil {
		fmt.Fprintf(r.config.ErrWriter, "Warning: %s\n", msg)
	}
}

// userConfigDir returns the user config directory as a {VAR} template.
// XDG_CONFIG_HOME is used when set to an absolute path.
func (r *Resolver) userConfigDir() string {
	xdg, ok := r.config.LookupEnv("XDG_CONFIG_HOME")
	switch {
	case !ok || xdg == "":
		return "{HOME}/.config"
	case !filepath.IsAbs(xdg):
		r.warn(fmt.Sprintf("ignoring relative XDG_CONFIG_HOME %q", xdg))
		return "{HOME}/.config"
	default:
		return "{XDG_CONFIG_HOME}"
	}
}

// Locations returns candidate config files, most specific first:
// local (git root), then global, then the configured defaults.
func (r *Resolver) Locations() []Location {
	var locs []Location
	if r.localPath != "" {
		locs = append(locs, Location{Path: r.localPath, Source: SourceLocal})
	}
	if r.globalPath != "" {
		locs = append(locs, Location{Path: r.globalPath, Source: SourceGlobal})
	}
	for _, p := range r.config.Defaults {
		if strings.TrimSpace(p) == "" {
			continue
		}
		locs = append(locs, Location{Path: p, Source: SourceDefault})
	}
	return locs
}

// Paths returns the Locations paths in order.
func (r *Resolver) Paths() []string {
	locs := r.Locations()
	paths := make([]string, len(locs))
	for i, l := range locs {
		paths[i] = l.Path
	}
	return paths
}

// GitRoot returns the detected git root directory.
func (r *Resolver) GitRoot() string {
	return r.gitRoot
}

// GlobalPath returns the path to the global config file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path to the local config file.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

// findGitRoot finds the git root by looking for .git directory.
func findGitRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return "", nil
}
