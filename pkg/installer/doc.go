// Package installer bootstraps a Neovim setup on macOS or Linux.
//
// An Installer walks a fixed list of steps: prerequisite checks, the editor
// itself, the user's init.vim, vim-plug, ctags (or shell aliases on lab hosts
// without root), the plugins and finally the colorscheme. Steps that differ
// between platforms are provided by a Variant: Homebrew on macOS, apt on
// Linux. Every step declares operations and hands them to an
// operations.Executor, so the same code runs for real, against a sandbox, or
// against an in-memory filesystem in tests.
package installer
