// Package limits keeps the numeric fields of a character inside ranges
// derived from its age and sex.
//
// An Engine runs a fixed, ordered list of passes over a record. Each governed
// quantity has a logical key; the Engine remembers the last range it computed
// for every key, and when a range moves, values are carried to the same
// relative position inside the new range instead of being clamped to the
// nearest bound. The memory belongs to the Engine and must be Reset whenever
// a record is treated as newly generated.
//
// Curves and pipeline knobs come from a YAML table, see curves.yaml.
package limits
