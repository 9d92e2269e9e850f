// Package config loads and validates repkit configuration.
//
// Configuration comes from a TOML file resolved from an explicit path, the
// user config directory, or a project-local repkit.toml. Values are
// normalized (path expansion, environment fallbacks) before validation so
// the rest of the program never sees raw file contents.
package config
