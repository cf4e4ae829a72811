// Package match suggests the closest known field name when a path segment
// does not resolve.
//
// Names are folded before comparison (camelCase and separators ignored, an
// optional trailing unit token dropped) and scored by optimal string
// alignment distance.
package match
