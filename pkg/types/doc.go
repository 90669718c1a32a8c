// Package types defines the shared vocabulary of sfokit: the typed error
// taxonomy returned by the codec and the container API.
//
// Design goals:
//   - Typed errors with stable categories (format/corrupt/not found/...).
//   - Sentinels usable with errors.Is after any amount of wrapping.
//   - Never panic on malformed input.
//
// This package has no dependencies beyond the standard library.
package types
