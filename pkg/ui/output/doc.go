// Package output renders nvboot's user-facing messages.
//
// Output is kept apart from logging: the Reporter writes what the user is
// meant to read (step headers, successes, warnings, echoed commands) while
// zerolog records diagnostics on stderr and in the log file.
//
// Styles come from the styles subpackage. When the destination is not a
// color terminal (piped, NO_COLOR, dumb terminal) messages are written as
// plain text.
package output
