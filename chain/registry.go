package chain

import (
	"fmt"
	"sort"

	"github.com/hasbyte1/cronies/data"
)

// Operation is a user-defined transformation. It receives the wrapper's
// current value and the arguments given to Call or Apply, and returns the
// new value. Returned values are normalized before they are recorded.
type Operation func(current any, args ...any) (any, error)

// Registry is an immutable set of named operations. With returns a new
// registry, so a Registry can be shared between wrappers and goroutines.
//
// Example – an operation that keeps only even integers:
//
//	reg := chain.NewRegistry().With("evens", func(cur any, _ ...any) (any, error) {
//	    var out []any
//	    for _, v := range cur.([]any) {
//	        if n, ok := v.(int); ok && n%2 == 0 {
//	            out = append(out, v)
//	        }
//	    }
//	    return out, nil
//	})
//
//	chain.Wrap([]int{1, 2, 3, 4}, chain.WithRegistry(reg)).Call("evens") // [2 4]
type Registry struct {
	ops map[string]Operation
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: map[string]Operation{}}
}

// With returns a copy of r that also holds op under name, replacing any
// operation already registered under that name.
func (r *Registry) With(name string, op Operation) *Registry {
	out := &Registry{ops: make(map[string]Operation, r.Len()+1)}
	if r != nil {
		for k, v := range r.ops {
			out.ops[k] = v
		}
	}
	out.ops[name] = op
	return out
}

// Lookup returns the operation registered under name.
func (r *Registry) Lookup(name string) (Operation, bool) {
	if r == nil {
		return nil, false
	}
	op, ok := r.ops[name]
	return op, ok
}

// Has reports whether an operation is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.ops)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.Len())
	if r != nil {
		for k := range r.ops {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// Call runs the operation registered under name. An unknown name reports
// [ErrOperationNotFound].
func (w *Wrapper) Call(name string, args ...any) *Wrapper {
	if w.err != nil {
		return w
	}
	op, ok := w.registry.Lookup(name)
	if !ok {
		return w.fail("call", fmt.Errorf("%w: %q", ErrOperationNotFound, name))
	}
	return w.apply(name, invoke(op, args))
}

// Apply runs op directly, without registering it.
func (w *Wrapper) Apply(op Operation, args ...any) *Wrapper {
	return w.apply("apply", invoke(op, args))
}

func invoke(op Operation, args []any) func(any) (any, error) {
	return func(cur any) (any, error) {
		out, err := op(cur, args...)
		if err != nil {
			return nil, err
		}
		return data.Normalize(out), nil
	}
}
