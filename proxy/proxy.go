package proxy

import (
	"github.com/jerryscript-go/jerry/arena"
	"github.com/jerryscript-go/jerry/internal/engerr"
	"github.com/jerryscript-go/jerry/internal/layout"
	"github.com/jerryscript-go/jerry/object"
	"github.com/jerryscript-go/jerry/value"
)

// Option is the construction-time bitmask spec.md §4.6 calls
// "skip-result-validation": a single bit today, left open (per
// SPEC_FULL.md §E Open Question #3) so future invariant-skip flags have a
// home without an API break.
type Option uint32

const (
	// SkipResultValidation disables the post-trap invariant checks,
	// intended for host code that accepts responsibility for them itself.
	SkipResultValidation Option = 1 << 0
)

// Handler holds the Go-callable traps a host installs for a proxy's
// handler object. A nil field means "no trap": the corresponding
// operation forwards straight to the target (spec.md §4.6). This mirrors
// how the rest of the engine models host-provided behavior as Go callbacks
// rather than interpreted bytecode (see api.NativeFunc).
type Handler struct {
	GetOwnProperty    func(key value.Value) (object.Descriptor, bool, error)
	DefineOwnProperty func(key value.Value, d object.Descriptor) error
	Has               func(key value.Value) (bool, error)
	Get               func(key value.Value, receiver value.Value) (value.Value, error)
	Set               func(key value.Value, v value.Value) error
	Delete            func(key value.Value) (bool, error)
	OwnKeys           func() ([]value.Value, error)
	GetPrototypeOf    func() (arena.CellRef, error)
	SetPrototypeOf    func(proto arena.CellRef) error
	IsExtensible      func() (bool, error)
	PreventExtensions func() (bool, error)
}

// Proxy holds the two owning references spec.md §4.6 requires. Once
// revoked Target is layout.NullPointer, Handler is nil, and every trap
// returns ErrRevoked.
type Proxy struct {
	Target  arena.CellRef
	Handler *Handler
	Options Option
	revoked bool
}

// New creates a proxy over target using handler. Trap results are checked
// later, against the Objects binding each trap method is passed (for the
// target's actual configurability/extensibility).
func New(target arena.CellRef, handler *Handler, opts Option) *Proxy {
	return &Proxy{Target: target, Handler: handler, Options: opts}
}

// Revoke detaches target and handler; every subsequent trap call fails
// with ErrRevoked (spec.md §4.6 "or null once revoked").
func (p *Proxy) Revoke() {
	p.revoked = true
	p.Target = layout.NullPointer
	p.Handler = nil
}

var (
	ErrRevoked            = engerr.New(engerr.ThrownValue, "proxy: trap invoked on a revoked proxy")
	ErrInvariantViolation = engerr.New(engerr.ThrownValue, "proxy: trap result violates an ECMAScript invariant")
)

func (p *Proxy) checkRevoked() error {
	if p.revoked {
		return ErrRevoked
	}
	return nil
}

func (p *Proxy) skipValidation() bool { return p.Options&SkipResultValidation != 0 }

// GetOwnProperty implements the "getOwnPropertyDescriptor" trap, falling
// back to the target's [[GetOwnProperty]] when absent, then validating the
// non-configurable-on-non-extensible-target invariant spec.md §4.6 names
// explicitly.
func (p *Proxy) GetOwnProperty(objs *object.Objects, key value.Value) (object.Descriptor, bool, error) {
	if err := p.checkRevoked(); err != nil {
		return object.Descriptor{}, false, err
	}
	if p.Handler.GetOwnProperty == nil {
		return objs.GetOwnProperty(p.Target, key)
	}
	d, ok, err := p.Handler.GetOwnProperty(key)
	if err != nil || !ok || p.skipValidation() {
		return d, ok, err
	}
	targetDesc, targetHas := objs.GetOwnProperty(p.Target, key)
	if targetHas && !targetDesc.Configurable && d.Configurable {
		return d, ok, ErrInvariantViolation
	}
	if !objs.IsExtensible(p.Target) && !targetHas {
		return d, ok, ErrInvariantViolation
	}
	return d, ok, nil
}

// DefineOwnProperty implements the "defineProperty" trap.
func (p *Proxy) DefineOwnProperty(objs *object.Objects, key value.Value, d object.Descriptor) error {
	if err := p.checkRevoked(); err != nil {
		return err
	}
	if p.Handler.DefineOwnProperty == nil {
		return objs.DefineOwnProperty(p.Target, key, d)
	}
	if err := p.Handler.DefineOwnProperty(key, d); err != nil {
		return err
	}
	if p.skipValidation() {
		return nil
	}
	targetDesc, has := objs.GetOwnProperty(p.Target, key)
	if has && !targetDesc.Configurable && d.HasConfigurable && d.Configurable {
		return ErrInvariantViolation
	}
	if !has && !objs.IsExtensible(p.Target) {
		return ErrInvariantViolation
	}
	return nil
}

// Has implements the "has" trap.
func (p *Proxy) Has(objs *object.Objects, key value.Value) (bool, error) {
	if err := p.checkRevoked(); err != nil {
		return false, err
	}
	if p.Handler.Has == nil {
		return objs.Has(p.Target, key), nil
	}
	ok, err := p.Handler.Has(key)
	if err != nil || ok || p.skipValidation() {
		return ok, err
	}
	if d, has := objs.GetOwnProperty(p.Target, key); has && !d.Configurable {
		return ok, ErrInvariantViolation
	}
	if !objs.IsExtensible(p.Target) {
		if _, has := objs.GetOwnProperty(p.Target, key); has {
			return ok, ErrInvariantViolation
		}
	}
	return ok, nil
}

// Get implements the "get" trap.
func (p *Proxy) Get(objs *object.Objects, key value.Value, receiver value.Value) (value.Value, error) {
	if err := p.checkRevoked(); err != nil {
		return value.Undefined(), err
	}
	if p.Handler.Get == nil {
		return objs.Get(p.Target, key, receiver), nil
	}
	return p.Handler.Get(key, receiver)
}

// Set implements the "set" trap.
func (p *Proxy) Set(objs *object.Objects, key value.Value, v value.Value) error {
	if err := p.checkRevoked(); err != nil {
		return err
	}
	if p.Handler.Set == nil {
		return objs.Set(p.Target, key, v)
	}
	return p.Handler.Set(key, v)
}

// Delete implements the "deleteProperty" trap, surfacing its error through
// the same (bool, error) channel as object.Objects.DeleteProperty
// (SPEC_FULL.md §E Open Question #1 — this is the trap that motivated it).
func (p *Proxy) Delete(objs *object.Objects, key value.Value) (bool, error) {
	if err := p.checkRevoked(); err != nil {
		return false, err
	}
	if p.Handler.Delete == nil {
		return objs.DeleteProperty(p.Target, key)
	}
	ok, err := p.Handler.Delete(key)
	if err != nil || !ok || p.skipValidation() {
		return ok, err
	}
	if d, has := objs.GetOwnProperty(p.Target, key); has && !d.Configurable {
		return ok, ErrInvariantViolation
	}
	return ok, nil
}

// OwnKeys implements the "ownKeys" trap.
func (p *Proxy) OwnKeys(objs *object.Objects) ([]value.Value, error) {
	if err := p.checkRevoked(); err != nil {
		return nil, err
	}
	if p.Handler.OwnKeys == nil {
		return objs.OwnKeys(p.Target), nil
	}
	return p.Handler.OwnKeys()
}

// GetPrototypeOf implements the "getPrototypeOf" trap.
func (p *Proxy) GetPrototypeOf(objs *object.Objects) (arena.CellRef, error) {
	if err := p.checkRevoked(); err != nil {
		return layout.NullPointer, err
	}
	if p.Handler.GetPrototypeOf == nil {
		return objs.GetPrototypeOf(p.Target), nil
	}
	return p.Handler.GetPrototypeOf()
}

// SetPrototypeOf implements the "setPrototypeOf" trap.
func (p *Proxy) SetPrototypeOf(objs *object.Objects, proto arena.CellRef) error {
	if err := p.checkRevoked(); err != nil {
		return err
	}
	if p.Handler.SetPrototypeOf == nil {
		return objs.SetPrototypeOf(p.Target, proto)
	}
	if err := p.Handler.SetPrototypeOf(proto); err != nil {
		return err
	}
	if p.skipValidation() || objs.IsExtensible(p.Target) {
		return nil
	}
	if objs.GetPrototypeOf(p.Target) != proto {
		return ErrInvariantViolation
	}
	return nil
}

// IsExtensible implements the "isExtensible" trap, requiring the result
// agree with the target's actual extensibility.
func (p *Proxy) IsExtensible(objs *object.Objects) (bool, error) {
	if err := p.checkRevoked(); err != nil {
		return false, err
	}
	if p.Handler.IsExtensible == nil {
		return objs.IsExtensible(p.Target), nil
	}
	ok, err := p.Handler.IsExtensible()
	if err != nil || p.skipValidation() {
		return ok, err
	}
	if ok != objs.IsExtensible(p.Target) {
		return ok, ErrInvariantViolation
	}
	return ok, nil
}

// PreventExtensions implements the "preventExtensions" trap.
func (p *Proxy) PreventExtensions(objs *object.Objects) (bool, error) {
	if err := p.checkRevoked(); err != nil {
		return false, err
	}
	if p.Handler.PreventExtensions == nil {
		objs.PreventExtensions(p.Target)
		return true, nil
	}
	ok, err := p.Handler.PreventExtensions()
	if err != nil || !ok || p.skipValidation() {
		return ok, err
	}
	if objs.IsExtensible(p.Target) {
		return ok, ErrInvariantViolation
	}
	return ok, nil
}
