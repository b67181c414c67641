package keymap

import "slices"

// Resolver turns incoming key strings into actions.
type Resolver struct {
	byKey   map[string]Action
	keysFor map[Action][]string
}

// NewResolver indexes the given bindings. When two bindings claim the
// same key the later one wins, so slice order sets precedence.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byKey:   make(map[string]Action),
		keysFor: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.byKey[key] = b.Action
			if !slices.Contains(r.keysFor[b.Action], key) {
				r.keysFor[b.Action] = append(r.keysFor[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action bound to key, or "" when unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}

// KeysFor lists the keys bound to action, in binding order without
// duplicates.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keysFor[action]
}
