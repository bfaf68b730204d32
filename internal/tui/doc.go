// Package tui renders traces as plain ANSI frames for non-interactive
// terminals, driven by a real playback controller.
package tui
