package step

// Registry is an ordered collection of steps. It is built once, before any
// execution begins, and is read-only during a run. Iteration yields steps in
// registration order.
//
// Names are not required to be unique: registering the same name twice
// produces two independent entries that both execute. Callers that care can
// check Names() before running.
type Registry struct {
	steps []Step
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{steps: make([]Step, 0)}
}

// Register appends a step. Registration order is execution order.
func (r *Registry) Register(s Step) {
	r.steps = append(r.steps, s)
}

// Len returns the number of registered steps.
func (r *Registry) Len() int {
	return len(r.steps)
}

// Steps returns the registered steps in registration order. The returned
// slice is a copy; mutating it does not affect the registry.
func (r *Registry) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

// Names returns the step names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.steps))
	for i, s := range r.steps {
		names[i] = s.Name()
	}
	return names
}
