// Package filesystem provides the OS implementation of types.FS and the
// Safety Gate every destructive operation goes through.
//
// The gate only permits writes, directory creation and deletes on paths
// whose normalized form contains the safety token (case-insensitive). It is
// a substring check, not a containment check: any path mentioning the token
// anywhere passes. Copies apply the gate to the destination only.
package filesystem
