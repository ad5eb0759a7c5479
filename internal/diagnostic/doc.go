// Package diagnostic collects structured errors, warnings and notes produced
// while generating a dictionary package.
//
// Typical diagnostics:
//   - Fields whose type has no code set (info)
//   - Code names renamed to avoid clashing with interface methods (warning)
//   - Identifier collisions between generated declarations (error)
//   - Malformed tag order or dangling message references (error)
package diagnostic
