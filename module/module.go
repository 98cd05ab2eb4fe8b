package module

import (
	"github.com/jerryscript-go/jerry/internal/engerr"
	"github.com/jerryscript-go/jerry/value"
)

// State is a module's position in the linker state machine
// (spec.md §4.10). A module never transitions backwards.
type State uint8

const (
	Unlinked State = iota
	Linking
	Linked
	Evaluating
	Evaluated
	Error
)

func (s State) String() string {
	switch s {
	case Linking:
		return "linking"
	case Linked:
		return "linked"
	case Evaluating:
		return "evaluating"
	case Evaluated:
		return "evaluated"
	case Error:
		return "error"
	default:
		return "unlinked"
	}
}

// Import is one entry in a module's imports list: a specifier as written
// in source, resolved to a concrete Module once linking reaches it.
type Import struct {
	Specifier  string
	Resolved   *Module
	LocalNames []string
}

// EvaluateFunc runs a module's body once its imports are linked. Source
// modules wrap their compiled bytecode in one of these; native modules
// supply their own evaluate callback directly (spec.md §4.10).
type EvaluateFunc func(m *Module) error

// Module is the class-object spec.md §4.10 describes.
type Module struct {
	state State

	Imports   []*Import
	Exports   []string // local export names
	Scope     map[string]value.Value
	Namespace map[string]value.Value // nil unless set by the host; nothing in this package populates it

	evaluate EvaluateFunc
	isNative bool
}

func (m *Module) State() State { return m.state }

// New creates an unlinked source module with the given imports, export
// names, and evaluate callback (the compiled bytecode entry point).
func New(imports []*Import, exports []string, evaluate EvaluateFunc) *Module {
	return &Module{
		Imports:  imports,
		Exports:  exports,
		Scope:    make(map[string]value.Value),
		evaluate: evaluate,
	}
}

// NewNative creates a native module: fixed export names, no imports, and
// starts already Linked (spec.md §4.10 "native modules ... start in the
// linked state"). exports must all be valid identifiers; validation is the
// caller's responsibility (the host constructs these, not script).
func NewNative(exports []string, evaluate EvaluateFunc) *Module {
	m := &Module{
		Exports:  exports,
		Scope:    make(map[string]value.Value),
		evaluate: evaluate,
		isNative: true,
		state:    Linked,
	}
	return m
}

// GetExport reads a native module's export binding
// (native_module_get_export, spec.md §4.10).
func (m *Module) GetExport(name string) (value.Value, bool) {
	v, ok := m.Scope[name]
	return v, ok
}

// SetExport writes a native module's export binding
// (native_module_set_export, spec.md §4.10). Only meaningful for native
// modules; source modules populate Scope from their own bytecode.
func (m *Module) SetExport(name string, v value.Value) {
	m.Scope[name] = v
}

var (
	ErrNotLinked     = engerr.New(engerr.ThrownValue, "module: evaluate requires state == linked")
	ErrResolveFailed = engerr.New(engerr.ThrownValue, "module: resolve callback failed")
)
