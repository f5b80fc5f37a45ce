// Package config finds where an application's configuration files live.
//
// Locations are returned most specific first:
//  1. Local config (e.g., .myapp.lz in git root)
//  2. Global config (e.g., {HOME}/.config/myapp/config.lz)
//  3. Extra default locations supplied by the application
//
// # Basic Usage
//
// Create a resolver with your application's settings and hand its paths to
// lazyconf.Config:
//
//	resolver := config.NewResolver(config.ResolverConfig{
//	    GlobalConfigDir: "myapp",
//	    LocalConfigName: ".myapp.lz",
//	})
//
//	cfg, err := lazyconf.Config("-c", resolver.Paths())
//
// Global paths are {VAR} templates ({HOME} or {XDG_CONFIG_HOME}) that
// lazyconf.Config expands against the environment.
//
// # Git Root Detection
//
// By default, the resolver looks for the local config in the git repository root.
// You can customize this by providing a GitRootFinder function:
//
//	resolver := config.NewResolver(config.ResolverConfig{
//	    GitRootFinder: func(dir string) (string, error) {
//	        // Custom logic to find git root
//	        return myGitRoot(), nil
//	    },
//	})
package config
