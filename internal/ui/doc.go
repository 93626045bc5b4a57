package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the gradebook service and renders one tab per
// subject with its evaluations, weight progress and status. All UI strings are
// localized via Localization.
