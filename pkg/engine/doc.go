// Package engine implements the classification-and-transfer engine.
//
// A run enumerates the source root in deterministic (name-sorted)
// order, classifies each entry, resolves a collision-free destination
// path, and either performs the move or records it as a simulated
// success in dry-run mode. Every entry yields exactly one
// TransferResult; per-entry failures never abort the run.
//
// The engine assumes exclusive access to the source and destination
// trees for the duration of a run. Concurrent external modification
// of either tree may produce stale-conflict or lost-update anomalies.
package engine
