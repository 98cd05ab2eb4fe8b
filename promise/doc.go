// Package promise implements the Promise state machine and the
// single-threaded, cooperative job queue of spec.md §4.9. A Promise moves
// from Pending to either Fulfilled or Rejected exactly once; the
// transition enqueues every captured reaction as a microtask on the
// shared Queue, which RunAllEnqueuedJobs then drains FIFO.
package promise
