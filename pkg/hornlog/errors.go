package hornlog

import "fmt"

// InsufficientlyInstantiatedArgsError is raised by external hooks (see
// Hook) that require a ground argument but received an unbound variable.
// Reordering goals in the calling clause's body may let the argument
// become bound before this predicate is reached.
type InsufficientlyInstantiatedArgsError struct {
	Name  string
	Arity int
}

func (e *InsufficientlyInstantiatedArgsError) Error() string {
	return fmt.Sprintf("insufficiently instantiated arguments to %s/%d", e.Name, e.Arity)
}

// TypeError is raised by external hooks that received an argument of the
// wrong shape (e.g. a Lit where a Num was required).
type TypeError struct {
	Name  string
	Arity int
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error in arguments to %s/%d", e.Name, e.Arity)
}
