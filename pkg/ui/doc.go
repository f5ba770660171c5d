// Package ui holds the terminal format detection shared by the output and
// confirmation packages.
package ui
