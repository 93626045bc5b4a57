package platform

// Package platform contains OS/platform integration: filesystem helpers for
// the data file and opening or revealing it with the desktop's own tools.
