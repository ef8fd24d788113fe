package keymap

// Resolver maps key strings to actions for a fixed set of contexts.
type Resolver struct {
	actions map[string]Action
	keys    map[Action][]string
}

// NewResolver builds a resolver over the bindings of contexts. Contexts are
// searched in the order given and a key keeps the first action it meets, so
// earlier contexts shadow later ones.
func NewResolver(bindings []Binding, contexts ...Context) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action),
		keys:    make(map[Action][]string),
	}
	for _, ctx := range contexts {
		for _, b := range ByContext(bindings, ctx) {
			for _, key := range b.Keys {
				if _, taken := r.actions[key]; taken {
					continue
				}
				r.actions[key] = b.Action
				r.keys[b.Action] = append(r.keys[b.Action], key)
			}
		}
	}
	return r
}

// Resolve returns the action for a key, or "" if the key is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// KeysFor returns the keys that resolve to action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}
