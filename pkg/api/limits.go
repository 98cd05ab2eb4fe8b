package api

// Limits groups the engine-wide resource ceilings a host may want to cap
// for a sandboxed embedding, the same "named limits grouped by category"
// shape as the teacher's pkg/types/limits.go (WindowsMaxSubkeysDefault,
// WindowsMaxValueSize1MB, ...), generalised from Windows Registry
// structural limits to ECMAScript engine ones. These are advisory values
// for a host's own use: no Config field takes them, and nothing in this
// module reads or enforces them.
type Limits struct {
	// MaxStringLength bounds a single string cell's CESU-8 byte length.
	MaxStringLength int
	// MaxTypedArrayLength bounds a TypedArray's element count.
	MaxTypedArrayLength int
	// MaxPropertiesPerObject bounds how many own properties a single
	// object may accumulate.
	MaxPropertiesPerObject int
	// MaxCallStackDepth bounds nested native-function re-entry depth
	// (spec.md §5 "Nested entry: host native functions may call back
	// into the engine").
	MaxCallStackDepth int
	// MaxPrototypeChainLength bounds how many hops GetPrototypeOf/Has may
	// walk before treating the chain as pathologically deep.
	MaxPrototypeChainLength int
}

// DefaultLimits returns generous, non-sandboxed defaults: every bound is
// large enough not to interfere with ordinary use, matching the teacher's
// "standard" (rather than "strict") constant tier.
func DefaultLimits() Limits {
	return Limits{
		MaxStringLength:         1 << 28, // 256Mi CESU-8 bytes
		MaxTypedArrayLength:     1 << 31,
		MaxPropertiesPerObject:  1 << 20,
		MaxCallStackDepth:       4096,
		MaxPrototypeChainLength: 4096,
	}
}

// StrictLimits returns a conservative tier suited to untrusted or
// resource-constrained embeddings, mirroring the teacher's "small"/
// "shallow" conservative constant tier.
func StrictLimits() Limits {
	return Limits{
		MaxStringLength:         1 << 16,
		MaxTypedArrayLength:     1 << 20,
		MaxPropertiesPerObject:  4096,
		MaxCallStackDepth:       256,
		MaxPrototypeChainLength: 256,
	}
}
