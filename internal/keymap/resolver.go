package keymap

// Resolver answers the two lookups the app needs from the binding table:
// key press to action for dispatch, and action to keys for help text.
type Resolver struct {
	byKey    map[string]Action
	byAction map[Action][]string
}

// NewResolver indexes the given bindings. When the same key appears in
// several bindings the later one wins; the same action spread over several
// bindings keeps every key, without duplicates.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byKey:    make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.byKey[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action bound to key, or the zero Action when the key
// is unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}

// KeysFor lists the keys that trigger action, in binding-table order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

func dedupe(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
