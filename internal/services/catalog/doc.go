// Package catalog fetches the upstream muscle taxonomy. The upstream API
// paginates; the client follows pagination and flattens the rows into a
// deduplicated list of muscle groups, merging taxonomy rows that share an
// english name (one muscle group may map to several upstream ids).
package catalog
