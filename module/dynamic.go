package module

import (
	"github.com/jerryscript-go/jerry/promise"
	"github.com/jerryscript-go/jerry/value"
)

// DynamicImportFunc is the installable callback behind `import(specifier)`
// at runtime: it receives the specifier and the referring script's user
// value, and returns a module, a value the engine wraps into a fulfilled
// promise, or an error (spec.md §4.10 "Dynamic import").
type DynamicImportFunc func(specifier string, referrerUserValue value.Value) (*Module, error)

// DynamicImport runs the installed callback and always produces a settled
// (or about-to-settle) promise: success yields a module's namespace
// wrapped in a fulfilled promise job, failure a rejected one — "a thrown
// error, which the engine wraps into a rejected promise" (spec.md §4.10).
func DynamicImport(r *promise.Resolver, cb DynamicImportFunc, specifier string, referrerUserValue value.Value, toNamespaceValue func(*Module) value.Value) *promise.Promise {
	p := promise.New()
	m, err := cb(specifier, referrerUserValue)
	if err != nil {
		// The concrete Error object for err is materialised by the pkg/api
		// boundary (create_error_from_value); here only the error channel's
		// shape (an error-tagged Value) needs to be produced.
		r.ResolveOrReject(p, value.ErrorRef(0), false)
		return p
	}
	r.ResolveOrReject(p, toNamespaceValue(m), true)
	return p
}
