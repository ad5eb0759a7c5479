// Package gen renders an orchestra model as a Go package implementing the
// dictionary runtime interfaces.
//
// Generation uses text/template + go/format and produces a single file:
//   - one type per field, in tag order, with an accessor per code
//   - one type per message, in dictionary order, with its flattened fields
//   - a sparse tag lookup table for the field collection
//   - Fields, Messages and Orchestration accessors built once on first use
//
// Problems with the model are collected as diagnostics; any error diagnostic
// fails generation.
package gen
