// Package filesystem provides implementations of the types.FS
// interface. The OS implementation is used in production; tests use
// the in-memory implementation from pkg/testutil.
package filesystem
