package engine

import (
	"errors"

	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/gc"
	"github.com/jerryscript-go/jerry/internal/engerr"
	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/internal/strenc"
	"github.com/jerryscript-go/jerry/module"
	"github.com/jerryscript-go/jerry/object"
	"github.com/jerryscript-go/jerry/promise"
	"github.com/jerryscript-go/jerry/value"
)

// StatusFlags are the non-external booleans a Context tracks across its
// lifetime (spec.md §4.11 "all status flags").
type StatusFlags struct {
	APIAvailable      bool
	MemStats          bool
	ShowOpcodes       bool
	DebuggerConnected bool
}

// Callbacks holds the optional, set-once-per-context hooks spec.md §6
// lists ("each optional, set once per context").
type Callbacks struct {
	// ErrorDecorator attaches extra state (e.g. a "stack" property) to a
	// freshly created Error-subclass object.
	ErrorDecorator func(errObj arena.CellRef)
	// ModuleResolve backs module.Linker.Resolve; set it instead of
	// poking the Linker directly so SetRealm-driven resets don't lose it.
	ModuleResolve module.ResolveFunc
	// ModuleStateChanged backs module.Linker.OnStateChange.
	ModuleStateChanged module.StateChangeFunc
	// DynamicImportResolve resolves an import(...) specifier at the
	// point module.DynamicImport needs one.
	DynamicImportResolve func(specifier string, referrer *module.Module) (*module.Module, error)
	// VMExecStop is polled every N interpreter ticks by a bytecode
	// interpreter (out of scope for this module); it is modeled here so
	// a future interpreter package has a slot to call into.
	VMExecStop func() (stop bool, abort value.Value)
}

// ErrNotInitialized names a Context operation attempted before Init or
// after Cleanup. No Context method returns it; APIAvailable reports that
// state instead.
var ErrNotInitialized = engerr.New(engerr.InternalAssert, "engine: context not initialized")

// Context is the process-wide (or host-managed) struct spec.md §4.11
// describes: the heap, every registry, the job queue, the exception slot,
// and the context-data manager chain, all owned together so Init/Cleanup
// can bring them up and tear them down as one unit (grounded on
// hive.Hive/hive.BaseBlock's single owning struct over the mmap'd heap
// plus its registries, and hive/reader.go's open/close pairing).
type Context struct {
	status StatusFlags

	Arena   *arena.Arena
	Heap    *value.Heap
	Objects *object.Objects
	GC      *gc.Collector

	realms  []*Realm // stack; last element is current
	Symbols *strenc.SymbolRegistry
	Magic   *value.MagicStrings

	Queue    *promise.Queue
	Tracker  *promise.Tracker
	Resolver *promise.Resolver

	Modules map[string]*module.Module
	Linker  *module.Linker

	NativePointers *NativePointerTable

	// exception is the current exception slot: set by any operation that
	// throws, cleared when the thrown value is consumed.
	exception value.Value
	hasThrown bool

	// newTarget is the constructor currently executing, or the zero
	// CellRef outside a [[Construct]] call.
	newTarget arena.CellRef

	Callbacks Callbacks
	contextData contextDataChain

	Port Port

	disabledFeatures map[Feature]bool
}

// Init brings up a fresh Context: zeroes every non-external field, marks
// the API available, creates the heap, and bootstraps a primordial realm
// around a freshly allocated, empty global object (spec.md §4.11
// "init(flags)"). Building the global
// object's built-ins themselves is the job of a higher-level veneer; Init
// only needs a cell reference to anchor the realm to.
func Init(cfg Config) *Context {
	width := cfg.PointerWidth
	if width == 0 {
		width = layout.PointerWidth32
	}
	port := cfg.Port
	if port == nil {
		port = NewDefaultPort()
	}

	a := arena.New(width)
	heap := value.NewHeap(a)
	objs := object.NewObjects(heap)
	collector := gc.New(a)
	collector.RegisterObjectModel()
	// Strings, symbols, BigInts, extended primitives, and ArrayBuffers are
	// refcounted (value.Heap.Acquire/Release, arraybuf.Acquire/Release),
	// not traced: the collector must never sweep them itself (spec.md
	// §4.7 "mark/sweep solely for object cycles").
	collector.ExemptFromSweep(
		arena.ClassString,
		arena.ClassSymbol,
		arena.ClassBigInt,
		arena.ClassExtendedPrimitive,
		arena.ClassArrayBuffer,
	)

	queue := &promise.Queue{}
	tracker := &promise.Tracker{}

	c := &Context{
		Arena:            a,
		Heap:             heap,
		Objects:          objs,
		GC:               collector,
		Symbols:          strenc.NewSymbolRegistry(),
		Magic:            value.NewMagicStrings(heap),
		Queue:            queue,
		Tracker:          tracker,
		Resolver:         &promise.Resolver{Queue: queue, Tracker: tracker},
		Modules:          make(map[string]*module.Module),
		NativePointers:   NewNativePointerTable(),
		Port:             port,
		disabledFeatures: cfg.DisabledFeatures,
	}
	c.Linker = &module.Linker{
		Resolve:       c.resolveModule,
		OnStateChange: c.notifyModuleState,
	}
	c.GC.RegisterFreeHook(arena.ClassObjectHeader, func(ref arena.CellRef, _ []byte) {
		c.NativePointers.FreeObject(ref)
	})
	c.GC.Roots = c.enumerateRoots

	globalRef, err := object.New(a, layout.NullPointer, layout.ClassNone)
	if err == nil {
		c.realms = []*Realm{NewRealm(globalRef)}
	}

	c.status.APIAvailable = true
	c.status.MemStats = c.FeatureEnabled(FeatureMemStats)
	return c
}

// enumerateRoots reports every realm's global object as a GC root,
// alongside the current exception slot and new.target if either holds a
// live object (spec.md §4.7 "root enumeration via host-supplied Roots
// callback": realms' globals, the exception slot, and new.target are
// exactly the context-owned roots beyond the call stack and job queue,
// which this module doesn't track as arena-resident state).
func (c *Context) enumerateRoots(push func(arena.CellRef)) {
	for _, r := range c.realms {
		push(r.Global)
		for _, ref := range r.Builtins {
			push(ref)
		}
	}
	if c.hasThrown && c.exception.IsObject() {
		push(c.exception.Ref())
	}
	if c.newTarget != layout.NullPointer {
		push(c.newTarget)
	}
}

func (c *Context) resolveModule(specifier string, referrer *module.Module) (*module.Module, error) {
	if c.Callbacks.ModuleResolve != nil {
		return c.Callbacks.ModuleResolve(specifier, referrer)
	}
	if m, ok := c.Modules[specifier]; ok {
		return m, nil
	}
	return nil, module.ErrResolveFailed
}

func (c *Context) notifyModuleState(m *module.Module, s module.State) {
	if c.Callbacks.ModuleStateChanged != nil {
		c.Callbacks.ModuleStateChanged(m, s)
	}
}

// Cleanup tears a Context down (spec.md §4.11 "cleanup"): it closes the
// debugger transport (there being none to close at this layer), runs
// every context-data manager's Deinit while the engine is still
// reachable, drains the job queue discarding results, clears
// API-available, runs every manager's Finalize, and finally drops the
// heap reference. Between Deinit and Finalize the engine is unavailable:
// manager code must not call back into any Context method.
func (c *Context) Cleanup() {
	c.contextData.deinitAll()

	for c.Queue.Len() > 0 {
		_ = c.Queue.RunAllEnqueuedJobs() // discard results/errors, per spec
	}

	c.status.APIAvailable = false
	c.contextData.finalizeAll()

	c.Arena = nil
	c.Heap = nil
	c.Objects = nil
}

// APIAvailable reports whether the Context is between Init and Cleanup.
func (c *Context) APIAvailable() bool { return c.status.APIAvailable }

// Status returns a copy of the current status flags.
func (c *Context) Status() StatusFlags { return c.status }

// SetShowOpcodes and SetDebuggerConnected toggle the remaining status
// flags a host can observe or set directly (MemStats is derived from
// FeatureMemStats instead).
func (c *Context) SetShowOpcodes(v bool)       { c.status.ShowOpcodes = v }
func (c *Context) SetDebuggerConnected(v bool) { c.status.DebuggerConnected = v }

// --- Realms ---------------------------------------------------------------

// CurrentRealm returns the realm currently in effect.
func (c *Context) CurrentRealm() *Realm {
	if len(c.realms) == 0 {
		return nil
	}
	return c.realms[len(c.realms)-1]
}

// SetRealm swaps in r as the current realm and returns the previous one,
// which the caller must eventually pass back to restore it
// (spec.md §4.11 "set_realm(realm) swaps the current realm ... the
// caller must restore it").
func (c *Context) SetRealm(r *Realm) (previous *Realm) {
	previous = c.CurrentRealm()
	if len(c.realms) == 0 {
		c.realms = append(c.realms, r)
		return previous
	}
	c.realms[len(c.realms)-1] = r
	return previous
}

// --- Context-data -----------------------------------------------------

// GetContextData finds or lazily creates the payload for manager
// (spec.md §4.11 "get_context_data(manager)").
func (c *Context) GetContextData(manager *ContextDataManager) any {
	return c.contextData.get(manager)
}

// RegisterContextDataManager is an alias for GetContextData used purely
// for readability at call sites that only want the registration side
// effect (first call allocates the payload via manager.Init).
func (c *Context) RegisterContextDataManager(manager *ContextDataManager) {
	c.contextData.get(manager)
}

// --- Exception slot ----------------------------------------------------

// Throw sets the current exception slot, the equivalent of returning an
// error reference from every operation up the call stack until something
// checks HasThrown (spec.md §7).
func (c *Context) Throw(v value.Value) {
	c.exception = v
	c.hasThrown = true
}

// HasThrown reports whether the exception slot is set.
func (c *Context) HasThrown() bool { return c.hasThrown }

// TakeException clears and returns the current exception slot. Calling it
// when HasThrown is false returns value.Undefined().
func (c *Context) TakeException() value.Value {
	v := c.exception
	c.exception = value.Undefined()
	c.hasThrown = false
	return v
}

// --- new.target ---------------------------------------------------------

// NewTarget returns the constructor currently executing, or the zero
// CellRef outside any [[Construct]] call.
func (c *Context) NewTarget() arena.CellRef { return c.newTarget }

// SetNewTarget installs the constructor for the duration of a
// [[Construct]] call; restore with the returned previous value.
func (c *Context) SetNewTarget(t arena.CellRef) (previous arena.CellRef) {
	previous = c.newTarget
	c.newTarget = t
	return previous
}

// ErrNestedFreeCallback reports a nested engine entry attempted from
// within a native-pointer free callback, which spec.md §5 declares fatal
// ("Nested entry ... not from within a native-pointer free callback.
// Violations are fatal.").
var ErrNestedFreeCallback = errors.New("engine: nested entry from native-pointer free callback")
