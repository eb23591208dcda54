package model

// Package model defines domain data structures used across the app: list
// items, item kinds with their caps and natural keys, link normalization,
// and the assistant chat transcript. Structures are designed for direct
// binding in the UI and JSON persistence.
