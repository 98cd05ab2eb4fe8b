// Package engine ties the heap, GC, job queue, module registry, and symbol
// registry together into the Context spec.md §4.11 describes, plus the
// host Port boundary spec.md §6 requires every deployment to supply.
package engine
