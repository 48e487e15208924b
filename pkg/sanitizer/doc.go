// Package sanitizer provides small, stateless helpers for cleaning raw form
// input before it is validated.
//
// The validation engine builds its per-pass Context with TrimValues, and rules
// use Trim, Length and Lower so that every value-based check sees the same
// normalised view of the input. Helpers can be chained with Apply and
// Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.Lower,
//	)
//
//	email := clean("  Jane@Example.COM ") // "jane@example.com"
//
// None of the helpers mutate their arguments; TrimValues always returns a new
// map.
package sanitizer
