package engine

// ContextDataManager is a host-supplied module registered against a
// Context: init allocates and populates the payload the first time
// GetContextData sees this manager, deinit runs during Cleanup while the
// engine is still reachable, and finalize runs afterward, when manager code
// may free host resources but must not call back into the engine
// (spec.md §4.11).
type ContextDataManager struct {
	// Init creates the payload for a fresh entry.
	Init func() any
	// Deinit is called once during Cleanup, before the engine becomes
	// unavailable.
	Deinit func(payload any)
	// Finalize is called once during Cleanup, after the engine becomes
	// unavailable.
	Finalize func(payload any)
}

// contextDataEntry is one linked-list node: a manager plus its lazily
// created payload.
type contextDataEntry struct {
	manager *ContextDataManager
	payload any
	next    *contextDataEntry
}

// contextDataChain is the manager chain a Context owns, keyed by manager
// pointer identity the way the original keys its linked list by the
// manager's vtable pointer.
type contextDataChain struct {
	head *contextDataEntry
}

// get finds the entry for manager, creating one via manager.Init if this
// is the first time this manager has been seen (get_context_data).
func (c *contextDataChain) get(manager *ContextDataManager) any {
	for e := c.head; e != nil; e = e.next {
		if e.manager == manager {
			return e.payload
		}
	}
	var payload any
	if manager.Init != nil {
		payload = manager.Init()
	}
	c.head = &contextDataEntry{manager: manager, payload: payload, next: c.head}
	return payload
}

// deinitAll runs every registered manager's Deinit, in registration order
// reversed (most-recently-registered first), while the engine is still
// available.
func (c *contextDataChain) deinitAll() {
	for e := c.head; e != nil; e = e.next {
		if e.manager.Deinit != nil {
			e.manager.Deinit(e.payload)
		}
	}
}

// finalizeAll runs every registered manager's Finalize, after the engine
// has become unavailable.
func (c *contextDataChain) finalizeAll() {
	for e := c.head; e != nil; e = e.next {
		if e.manager.Finalize != nil {
			e.manager.Finalize(e.payload)
		}
	}
}
