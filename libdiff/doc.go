// Package libdiff compares documents: line diffs of their TOML renderings,
// semantic equality and JSON merge patches of their JSON renderings.
package libdiff
