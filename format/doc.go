// Package format names the document formats an imploded tree can be
// printed in.
//
// Explode input is always TOML. Implode output defaults to TOML and may be
// rendered as JSON or YAML for inspection.
package format
