// Package codegen provides the build-time UCUM registry compiler.
//
// This package is internal and not part of the public API.
// It contains:
//   - ucumgen: parses the UCUM essence XML, resolves the fixed-point
//     factor graph, applies the hard-coded overrides the XML cannot
//     express, and emits the embedded Go source consumed by pkg/ucum.
package codegen
