package flux

import "fmt"

// Env is a lexical scope frame: a binding table with a link to its
// enclosing frame. Frames are shared by reference — a closure capturing
// an *Env observes later mutations made through any other reference to
// the same frame. Grounded on the teacher's Env design, simplified by
// dropping the type-checking and write-sealing fields that Flux has no
// use for.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a frame whose enclosing scope is parent. A nil parent
// marks the global frame.
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// Define introduces name in this frame, shadowing any binding of the
// same name in an enclosing frame. Re-declaring a name already present
// in this exact frame silently overwrites it.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get resolves name by walking outward from e to the global frame.
func (e *Env) Get(name string) (Value, error) {
	for frame := e; frame != nil; frame = frame.parent {
		if v, ok := frame.table[name]; ok {
			return v, nil
		}
	}
	return Nil, fmt.Errorf("Undefined variable '%s'", name)
}

// Set assigns to the nearest existing binding of name, walking outward
// from e. It never creates a new binding; assigning to a name that was
// never declared is a runtime error.
func (e *Env) Set(name string, v Value) error {
	for frame := e; frame != nil; frame = frame.parent {
		if _, ok := frame.table[name]; ok {
			frame.table[name] = v
			return nil
		}
	}
	return fmt.Errorf("Undefined variable '%s'", name)
}
