// Package executor runs external commands for the installer.
//
// ExecRunner shells out for real. StubRunner is the test-mode runner: it
// records and echoes every command but only executes programs on a small
// allow-list (node, brew and git by default), so prerequisite checks still see
// the real machine while nothing is installed.
package executor
