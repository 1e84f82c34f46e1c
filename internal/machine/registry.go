package machine

import "github.com/shapestone/yeast/internal/yerr"

// ContextSeparator is the fixed string yip_test's machine_by_name splices
// between a production's name and its context argument when the context
// is non-empty: `<name><ContextSeparator><context>`. spec.md §9 flagged
// this length as an open question between the legacy single-character
// form and a three-character form; grounded directly on
// _examples/original_source/yip.c's machine_by_name, whose bounds check
// (`by_name_length == name_length + 3 + context_length`) fixes it at
// three.
const ContextSeparator = "..."

// Registry looks up a Machine by production name plus optional n
// (indentation), c (context), and t (chomping) parameters, matching
// spec.md §4.H / yip.c's machine_by_parameters + machine_by_name. There
// are four tables, one per (n present, t present) combination; c never
// selects the table, only the lookup key within it.
type Registry struct {
	plain  map[string]*Machine // neither n nor t
	withN  map[string]*Machine // n only
	withT  map[string]*Machine // t only
	withNT map[string]*Machine // both n and t
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		plain:  map[string]*Machine{},
		withN:  map[string]*Machine{},
		withT:  map[string]*Machine{},
		withNT: map[string]*Machine{},
	}
}

// Register adds m under name, filed into the table selected by hasN/hasT.
// If context is non-empty, the entry is only reachable by a Lookup that
// supplies the same context string.
func (r *Registry) Register(name string, hasN, hasT bool, context string, m *Machine) {
	key := name
	if context != "" {
		key = name + ContextSeparator + context
	}
	table := r.tableFor(hasN, hasT)
	table[key] = m
}

func (r *Registry) tableFor(hasN, hasT bool) map[string]*Machine {
	switch {
	case hasN && hasT:
		return r.withNT
	case hasN:
		return r.withN
	case hasT:
		return r.withT
	default:
		return r.plain
	}
}

// Lookup finds the machine registered for name with the given optional
// parameters. context == "" means no context argument was supplied.
func (r *Registry) Lookup(name string, hasN bool, context string, hasT bool) (*Machine, error) {
	table := r.tableFor(hasN, hasT)
	key := name
	if context != "" {
		key = name + ContextSeparator + context
	}
	m, ok := table[key]
	if !ok {
		return nil, yerr.New(yerr.EINVAL, "machine.Registry.Lookup")
	}
	return m, nil
}
