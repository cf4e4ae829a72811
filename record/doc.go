// Package record defines the character record edited by the editor session.
//
// Every struct implements fieldpath.Grouper through paths_gen.go, which is
// produced by cmd/pathgen. Path segment names are the json tag names, so
// "arms.left.strength" addresses Character.Arms.Left.Strength.
package record

//go:generate go run ../cmd/pathgen generate --pkg . --out .
