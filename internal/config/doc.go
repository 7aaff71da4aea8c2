// Package config holds the grapher's configuration: desktop settings kept in
// Fyne preferences and the TOML file read by the command-line renderer.
package config
