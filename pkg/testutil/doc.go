// Package testutil provides isolated on-disk workspaces for tests.
//
// Every workspace root contains the safety token so guarded filesystem
// operations succeed inside it, while t.TempDir() itself does not.
package testutil
