// Package fieldpath addresses leaf fields of a nested record by dotted,
// optionally indexed paths such as "relationships.people[2].closeness".
//
// Records do not go through reflection. Every struct that takes part in a
// path implements Grouper, usually through code emitted by cmd/pathgen, and
// hands out Field values bound to pointers into the live record. Writes
// therefore land in place at every depth and no copy has to be written back
// through the parents.
//
// Key functions:
//   - Parse: splits a path string into segments
//   - Lookup: walks a path to the addressed Field
//   - Get, Set: read and write a leaf with value coercion
//   - Walk: visits every reachable leaf with its concrete path
package fieldpath
