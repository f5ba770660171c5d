// Package paths provides the path table nvboot installs into.
//
// A Table maps logical names (config_file, plugin_file, shell_rc, ...) to
// absolute locations. New builds the real table from the XDG base
// directories and the user's home. NewSandbox builds the test-mode table in
// which every entry lives under one root directory. The installer only ever
// asks a Table for locations, so switching between the two is a matter of
// handing it a different Table; entries are never mixed.
package paths
