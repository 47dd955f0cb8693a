// Package common provides small shared utilities used across the module.
//
// Currently this is PathError and its helpers, which annotate an error
// with the location (a file path, a conversion path) where it occurred,
// plus a few sentinel errors.
package common
