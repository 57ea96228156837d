// Package container models array and object payloads behind shared
// handles so that every wrapper produced from the same source aliases
// one backing store.
//
// Key capabilities:
//   - Array: a pointer-shared slice container that survives append
//   - Absent: the sentinel for missing keys and out-of-range indexes
//   - Normalize/Export: JSON-shaped value (de)normalization
package container
