// Package rpc implements the named-operation boundary: a registry of
// operations with typed named arguments, plus the Fiber transport that
// serves them under /api/<operation>. Handlers are bound explicitly at
// startup; there is no reflection anywhere in the dispatch path.
package rpc

import "context"

// Handler executes one named operation against already-decoded
// arguments. Domain outcomes and validation results are ordinary
// return values; errors are reserved for hard failures.
type Handler func(ctx context.Context, args Args) (any, error)

// Registry maps stable operation names to handlers. It is populated
// once during startup wiring and read-only afterwards, so lookups need
// no locking.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds an operation name to its handler.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Resolve looks up the handler for an operation name.
func (r *Registry) Resolve(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}
