package event

import "fmt"

// handler is a type-erased bound callable for one slot.
type handler func(Event) error

// Dispatcher routes events from a Source to bound handlers.
//
// The set of kinds a dispatcher recognizes is fixed at construction:
// one optional handler slot per configured kind, at most one handler
// bound per slot. Events of unconfigured or unbound kinds are dropped
// silently; that is routine filtering, not an error.
//
// A dispatcher is single-threaded by contract: Bind and Poll must run
// on the same goroutine. Binding concurrently with Poll is undefined
// behavior; the dispatcher deliberately carries no locks.
type Dispatcher struct {
	src   Source
	cls   classifier
	slots map[Kind]handler
}

// NewDispatcher creates a dispatcher recognizing exactly the given
// kinds. Unknown or duplicate kinds are rejected, and the kind set
// cannot change afterwards.
func NewDispatcher(src Source, kinds ...Kind) (*Dispatcher, error) {
	if src == nil {
		return nil, fmt.Errorf("event: nil source")
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("event: no kinds configured")
	}

	slots := make(map[Kind]handler, len(kinds))
	for _, k := range kinds {
		if !k.valid() {
			return nil, fmt.Errorf("event: unknown kind %d", uint8(k))
		}
		if _, dup := slots[k]; dup {
			return nil, fmt.Errorf("event: duplicate kind %s", k)
		}
		slots[k] = nil
	}

	return &Dispatcher{src: src, slots: slots}, nil
}

// Binder binds one handler to one configured kind. Obtain via Bind.
type Binder[E Event] struct {
	d    *Dispatcher
	kind Kind
}

// Bind returns a binder for the kind associated with payload type E.
// Panics if that kind is not configured on the dispatcher, so a
// misconfigured binding fails at setup time, never during dispatch.
func Bind[E Event](d *Dispatcher) Binder[E] {
	var zero E
	k := zero.kind()
	if _, ok := d.slots[k]; !ok {
		panic("event: kind " + k.String() + " not configured on dispatcher")
	}
	return Binder[E]{d: d, kind: k}
}

// To binds fn as the sole handler for the binder's kind. fn may be a
// free function, a closure, or a method value; a method value holds a
// non-owning reference to its receiver, which must outlive every
// subsequent Poll call.
//
// Rebinding replaces the previous handler without warning. There is
// no unbind: rebind to a no-op to clear a slot.
func (b Binder[E]) To(fn func(E) error) {
	if fn == nil {
		panic("event: nil handler for kind " + b.kind.String())
	}
	// The assertion always holds: the kind-to-payload-type mapping
	// is injective and the slot only receives events of b.kind
	b.d.slots[b.kind] = func(ev Event) error {
		return fn(ev.(E))
	}
}

// Poll drains all currently queued events without blocking and
// dispatches each to its bound handler, in arrival order, one at a
// time. A handler error aborts the pass and is returned unchanged;
// events the source has not yet produced by then are handled by the
// next call.
func (d *Dispatcher) Poll() error {
	for {
		raw, ok := d.src.PollEvent()
		if !ok {
			return nil
		}

		ev, ok := d.cls.classify(raw)
		if !ok {
			continue
		}

		fn := d.slots[ev.kind()]
		if fn == nil {
			continue
		}

		if err := fn(ev); err != nil {
			return err
		}
	}
}

// Handles reports whether kind is configured and currently bound.
func (d *Dispatcher) Handles(kind Kind) bool {
	return d.slots[kind] != nil
}

// Kinds returns the configured kind set.
func (d *Dispatcher) Kinds() []Kind {
	kinds := make([]Kind, 0, len(d.slots))
	for k := KindQuit; k < kindCount; k++ {
		if _, ok := d.slots[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
