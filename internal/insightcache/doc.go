// Package insightcache persists generated coaching content so repeat plan
// compositions for the same exercises skip upstream generation calls.
//
// The cache is a small SQLite database guarded by a sidecar flock so
// concurrent CLI invocations cannot interleave writes. A lock held by
// another process degrades the cache to disabled rather than failing the
// caller; a disabled cache answers no lookups and ignores stores.
package insightcache
