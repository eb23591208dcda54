package liststore

// Package liststore manages the UI-side snapshots of the widget's ordered
// lists. One Store per kind mediates between the rendered list, preferences
// persistence, and the authoritative mirror: mutations round-trip through the
// mirror and adopt its reply, reorders resolve locally, and every change
// funnels through one reducer before the render callback fires.
