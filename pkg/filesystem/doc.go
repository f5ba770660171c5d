// Package filesystem provides the afero filesystems nvboot writes through
// and small helpers on top of them.
//
// Production code uses the OS filesystem. Tests use an in-memory one, so the
// operations layer never needs to know which it is talking to.
package filesystem
