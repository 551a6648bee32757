//go:build !darwin
// +build !darwin

package ui

// Only macOS distinguishes Dock-visible and background-only apps.

func showDockIcon() {}

func hideDockIcon() {}
