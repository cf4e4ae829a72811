// Package diagnostic provides structured warnings and errors for the path
// generator.
//
// Key capabilities:
//   - Unsupported field shapes (maps, interfaces, foreign structs)
//   - Skipped fields and why they were skipped
//   - A combined error for callers that stop on the first failed run
package diagnostic
