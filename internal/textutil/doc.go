// Package textutil provides text processing utilities for exercise and
// muscle name comparison.
//
// The primary use cases are:
//   - Normalizing free-text names into comparable token sequences
//   - Computing character-bigram Dice similarity between names
//   - Slugifying labels for stable lookup keys
//
// Normalization lowercases text, strips diacritics, applies a lightweight
// suffix stemmer, folds known irregular plurals, and drops stop words. It is
// a heuristic pipeline tuned for short exercise names, not a dictionary
// stemmer; occasional over- or under-stemming is accepted.
package textutil
