// Package api is the host-facing veneer spec.md §6 describes sitting on
// top of the core: property descriptor conversion
// (to_property_descriptor/from_property_descriptor), the native function
// call shape, the error/abort promotion pair, and engine-wide resource
// limits. It adds no new engine state of its own — everything here is a
// thin, explicit wrapper over object/value/engine operations, grounded on
// the teacher's pkg/types (api.go, limits.go) public-surface shape,
// generalised from hive-specific types (RegType, NodeID) to ECMAScript
// ones.
package api
