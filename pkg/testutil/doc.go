// Package testutil provides test helpers, most notably an in-memory
// implementation of types.FS with error injection and symlink support.
package testutil
