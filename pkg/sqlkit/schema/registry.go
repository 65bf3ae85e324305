package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var ErrNotRegistered = errors.New("[schema] type has no table definition")

// Definer is implemented by entity types that carry their own table
// definition. Lookup falls back to it when a type was never registered
// explicitly.
type Definer interface {
	TableDefinition() *Table
}

// Registry maps Go types to table descriptors. Lookups are read-through:
// a type implementing Definer is defined once on first use and cached.
// A zero Registry is ready to use; the package-level Default registry backs
// the convenience functions.
type Registry struct {
	mu     sync.RWMutex
	tables map[reflect.Type]*Table
}

// Default is the process-wide registry used by Register and Lookup.
var Default = &Registry{}

func typeOf(entity any) reflect.Type {
	t := reflect.TypeOf(entity)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// Register binds the entity's type to the given descriptor, replacing any
// earlier binding.
func (r *Registry) Register(entity any, table *Table) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.tables == nil {
		r.tables = map[reflect.Type]*Table{}
	}
	r.tables[typeOf(entity)] = table
}

// Lookup resolves the entity's table descriptor: an explicit registration
// wins, then a Definer implementation is consulted and cached.
func (r *Registry) Lookup(entity any) (*Table, error) {
	t := typeOf(entity)

	r.mu.RLock()
	table, ok := r.tables[t]
	r.mu.RUnlock()
	if ok {
		return table, nil
	}

	d, ok := entity.(Definer)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotRegistered, t)
	}

	table = d.TableDefinition()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tables == nil {
		r.tables = map[reflect.Type]*Table{}
	}
	if cached, ok := r.tables[t]; ok {
		return cached, nil
	}
	r.tables[t] = table

	return table, nil
}

// Register binds entity's type to table in the default registry.
func Register(entity any, table *Table) {
	Default.Register(entity, table)
}

// Lookup resolves entity's descriptor from the default registry.
func Lookup(entity any) (*Table, error) {
	return Default.Lookup(entity)
}
