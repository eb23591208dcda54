package ui

// Package ui contains the Fyne-based desktop user interface for the widget.
// It wires user interactions to the list stores and AI services and renders
// the list panels, timer, chat window, and settings. All UI strings are
// localized via Localization.
