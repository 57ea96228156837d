// Package coerce implements the single construction-time coercion pass:
// a pure function from (kind, raw value, lock flags) to the converted
// value and its post-coercion kind.
//
// Key behaviors:
//   - string -> boolean ("true"/"false", case-insensitive)
//   - string -> number (full finite parse; Inf and NaN text rejected)
//   - string -> array/object (bracket-delimited JSON, best effort:
//     parse failures fall back to the original string, never an error)
//   - boolean -> 1/0 under the bool lock (kind stays boolean)
//   - container normalization behind shared handles
package coerce
