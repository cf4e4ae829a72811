// Package gen provides deterministic Go code generation for path tables.
//
// Generation approach uses text/template + go/format for readable,
// reflection-free Go code. For every exported struct of a package it emits a
// PathField method that binds each member to a fieldpath.Field:
//   - int, float64, bool and string leaves
//   - enums (int types with a String method and a <Type>Total constant)
//   - nested structs, by address
//   - pointers to structs, reported absent while nil
//   - slices of structs, as lists addressed by index
package gen
