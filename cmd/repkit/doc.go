// Package main hosts the repkit CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the composition engine: composing
// plans, probing the matcher, inspecting the parsed library, syncing the
// muscle catalog, and managing the insight cache and configuration. It
// centralizes configuration resolution and logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
