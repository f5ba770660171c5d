// Package operations provides the small set of actions an install step can
// ask for, and the executor that performs them.
//
// Steps never touch the filesystem or spawn processes directly. They return
// a list of operations and the Executor carries them out:
//
//   - RunCommand runs an executor.Command through the configured runner
//   - MakeDir creates a directory and its parents
//   - CopyFile copies a source file to a target
//   - AppendBlock appends a marked block to a file
//   - WriteFile writes a whole file
//
// Every operation may carry a SkipIfExists guard. When the guard path exists
// the operation is reported as already present and nothing happens. An
// AppendBlock whose marker or content is already in the target is skipped the
// same way, which makes a second install run a no-op.
package operations
