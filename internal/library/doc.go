// Package library parses the bundled exercise corpus and builds the lookup
// indexes the matcher and plan composer operate on.
//
// The corpus is one markdown document per muscle group: an H1 muscle label,
// an H2 section per exercise, ordered lists for instruction steps, images
// for demonstration media, blockquotes and loose paragraphs for coaching
// notes, and an optional "Difficulty:" line. Sections that fail validation
// (no title, or no instruction step and no resolvable media) are dropped
// and counted rather than silently ignored.
//
// Index construction is explicit and pure: BuildIndex over the same
// document set always yields the same indexes, and no entry is mutated
// after construction.
package library
