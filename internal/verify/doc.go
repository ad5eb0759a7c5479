// Package verify type-checks a generated dictionary package.
//
// It loads the package with golang.org/x/tools/go/packages, reports any
// compile errors, and uses go/types to count the types implementing the
// dictionary field and message interfaces, so a run can be compared with
// the model it was generated from.
package verify
