// Package domain defines core data models shared across cipherkit.
// It contains plain value types (variants, keys, attack parameters and
// results), the contract every cipher variant satisfies, and the error
// taxonomy. Nothing here performs I/O or holds mutable state.
package domain
