package module

// ResolveFunc resolves an import specifier relative to a referring module,
// returning the target Module (spec.md §4.10 "invoke the resolve callback
// with (specifier, referrer)").
type ResolveFunc func(specifier string, referrer *Module) (*Module, error)

// StateChangeFunc is the host-installable notification fired whenever a
// module transitions to Linked, Evaluated, or Error (spec.md §4.10).
type StateChangeFunc func(m *Module, newState State)

// Linker drives module_link/module_evaluate over a resolve callback and an
// optional state-change notification.
type Linker struct {
	Resolve       ResolveFunc
	OnStateChange StateChangeFunc
}

func (l *Linker) notify(m *Module, s State) {
	if l.OnStateChange != nil {
		l.OnStateChange(m, s)
	}
}

func (l *Linker) setState(m *Module, s State) {
	m.state = s
	if s == Linked || s == Evaluated || s == Error {
		l.notify(m, s)
	}
}

// Link implements module_link(root, resolve_cb): a DFS from root following
// imports. A module already in the Linking state when revisited
// short-circuits (cycle); on success every reachable module ends at least
// Linked, on failure every touched module transitions to Error
// (spec.md §4.10).
func (l *Linker) Link(root *Module) error {
	return l.linkVisit(root, root)
}

func (l *Linker) linkVisit(m, referrer *Module) error {
	switch m.state {
	case Linking:
		return nil // cycle: already in progress, see it as "linked enough" for the DFS
	case Linked, Evaluating, Evaluated:
		return nil // already done (or further along) by a previous Link call
	case Error:
		return ErrResolveFailed
	}

	if m.isNative {
		l.setState(m, Linked)
		return nil
	}

	m.state = Linking
	for _, imp := range m.Imports {
		if imp.Resolved == nil {
			resolved, err := l.Resolve(imp.Specifier, referrer)
			if err != nil {
				l.setState(m, Error)
				return err
			}
			imp.Resolved = resolved
		}
		if err := l.linkVisit(imp.Resolved, m); err != nil {
			l.setState(m, Error)
			return err
		}
	}
	l.setState(m, Linked)
	return nil
}

// Evaluate implements module_evaluate: requires state == Linked, executes
// each module's bytecode in post-order of the dependency DAG, then
// transitions the root to Evaluated (spec.md §4.10).
func (l *Linker) Evaluate(root *Module) error {
	if root.state != Linked {
		return ErrNotLinked
	}
	visited := make(map[*Module]bool)
	return l.evaluatePostOrder(root, visited)
}

func (l *Linker) evaluatePostOrder(m *Module, visited map[*Module]bool) error {
	if visited[m] {
		return nil
	}
	visited[m] = true

	if m.state == Evaluated {
		return nil
	}
	for _, imp := range m.Imports {
		if imp.Resolved == nil {
			continue
		}
		if err := l.evaluatePostOrder(imp.Resolved, visited); err != nil {
			l.setState(m, Error)
			return err
		}
	}

	m.state = Evaluating
	if m.evaluate != nil {
		if err := m.evaluate(m); err != nil {
			l.setState(m, Error)
			return err
		}
	}
	l.setState(m, Evaluated)
	return nil
}
