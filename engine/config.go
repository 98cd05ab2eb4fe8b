package engine

import "github.com/jerryscript-go/jerry/internal/layout"

// Feature is one of the optional subsystems feature_enabled(id) gates
// (spec.md §6). Contexts always report every feature actually wired into
// this module as enabled; Config.DisabledFeatures lets a host turn
// individual ones off for parity testing.
type Feature int

const (
	FeatureBigInt Feature = iota
	FeatureProxy
	FeaturePromise
	FeatureSymbol
	FeatureTypedArray
	FeatureDataView
	FeatureRegexp
	FeatureDate
	FeatureRealms
	FeatureModules
	FeatureWeakRef
	FeatureContainers
	FeatureDebugger
	FeatureSnapshotSaveExec
	FeatureLineInfo
	FeatureParser
	FeatureMemStats
	FeatureParserRegexpDump
	FeatureVMStop
	FeatureErrorMessages
	FeatureLogging
	FeatureGlobalThis
)

// Config configures a fresh Context, playing the role the teacher's
// alloc.Options/builder.Options structs play for the allocator and
// builder: a plain struct of construction-time choices rather than a
// flag/env-parsing layer, which belongs at the cmd/ boundary instead
// (SPEC_FULL.md ambient-stack "Configuration").
type Config struct {
	// PointerWidth selects 16- or 32-bit compressed pointers for the
	// underlying arena. Defaults to layout.PointerWidth32 if zero.
	PointerWidth layout.PointerWidth

	// Port supplies the host boundary. Defaults to NewDefaultPort() if
	// nil.
	Port Port

	// DisabledFeatures turns off individual Features for
	// feature_enabled(id) even though this module implements them.
	DisabledFeatures map[Feature]bool
}

// FeatureEnabled reports whether f is available in this Context
// (feature_enabled(id), spec.md §6).
func (c *Context) FeatureEnabled(f Feature) bool {
	return !c.disabledFeatures[f]
}
