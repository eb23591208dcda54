package platform

// Package platform contains OS/platform integration: filesystem helpers,
// generated-image saving, and OS open/reveal commands.
