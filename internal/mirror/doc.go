package mirror

// Package mirror holds the authoritative copy of every list. UI-side stores
// keep their own snapshots and reconcile every mutation through the Service
// interface, which assigns IDs and timestamps, deduplicates by natural key,
// and enforces per-kind caps. The interface keeps the process boundary
// abstract; Store is the in-memory implementation.
