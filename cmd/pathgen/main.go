// Command pathgen generates reflection-free path tables for record packages.
//
// For every exported struct of a package it writes a PathField method that
// binds each member to a fieldpath.Field, so that dotted paths such as
// "relationships.people[2].closeness" resolve without runtime reflection.
//
// Usage:
//
//	pathgen generate --pkg ./record --out ./record
//	pathgen paths --pkg ./record --root Character
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		os.Exit(1)
	}
}
