// Package gc implements the cycle-collecting mark/sweep pass of
// spec.md §4.7: an iterative (non-recursive) depth-first mark over the
// object graph using a visited set keyed by CellRef, followed by a sweep
// that frees every unmarked cell whose class is not exempted from sweep
// (Collector.ExemptFromSweep) and invokes native-info free callbacks.
//
// The mark pass is type-erased: gc doesn't know what an object, a
// property, or a module record looks like. Each arena.Class registers a
// Scanner that, given a cell's payload, reports the CellRefs it points to.
// This generalises the teacher's bitmap-based iterative walker (which only
// ever had one cell shape, NK/VK, to deal with) to the handful of
// differently-shaped cell kinds the engine allocates.
package gc
