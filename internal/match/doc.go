// Package match resolves free-text exercise names against the library
// indexes. Resolution short-circuits through increasingly loose strategies:
// exact normalized name, core key, alias key, query-derived alias keys, and
// finally a weighted fuzzy score over every entry. Matching is a pure
// function of the query and the prebuilt indexes.
package match
