// Package term models the constant literal values that docrun accepts as
// command-line arguments, and decodes raw argument text into them.
//
// The accepted grammar is HCL expression syntax restricted to compile-time
// constants: quoted strings, integers and floats, booleans, bare identifiers
// (symbols), bracketed lists and { name = value } records, nested to any
// depth. Anything else in the text, a variable traversal, a function call, a
// template interpolation, an operator, is a decode failure, never a partial
// value.
package term
