// Package module implements the module linker state machine of
// spec.md §4.10: a module moves forward only through
// {unlinked, linking, linked, evaluating, evaluated, error}, never
// backwards, driven by Link (a DFS over imports with cycle
// short-circuiting) and Evaluate (post-order execution of the dependency
// DAG).
package module
