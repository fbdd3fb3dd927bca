// Package registry holds the named buckets that registration calls
// accumulate into and that schema assembly and routing read back.
package registry

import (
	"sync"

	"github.com/graphql-go/graphql"
)

// Bucket names, also used as log and metric labels.
const (
	TypesBucket     = "graphql_types"
	QueriesBucket   = "graphql_queries"
	MutationsBucket = "graphql_mutations"
)

// Registry owns the type, query and mutation buckets. A nil *Registry
// stands for an absent context: its buckets are nil and every bucket
// operation degrades to a no-op or an empty result.
type Registry struct {
	types     *Bucket[*graphql.Object]
	queries   *Bucket[*graphql.Field]
	mutations *Bucket[*graphql.Field]
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		types:     NewBucket[*graphql.Object](TypesBucket),
		queries:   NewBucket[*graphql.Field](QueriesBucket),
		mutations: NewBucket[*graphql.Field](MutationsBucket),
	}
}

// Available reports whether the registry is present.
func (r *Registry) Available() bool {
	return r != nil
}

// Types returns the named object type bucket.
func (r *Registry) Types() *Bucket[*graphql.Object] {
	if r == nil {
		return nil
	}
	return r.types
}

// Queries returns the query operation bucket.
func (r *Registry) Queries() *Bucket[*graphql.Field] {
	if r == nil {
		return nil
	}
	return r.queries
}

// Mutations returns the mutation operation bucket.
func (r *Registry) Mutations() *Bucket[*graphql.Field] {
	if r == nil {
		return nil
	}
	return r.mutations
}

// Bucket is a name-keyed mapping that remembers insertion order.
// Setting an existing name replaces the value in place.
type Bucket[T any] struct {
	mu     sync.RWMutex
	name   string
	keys   []string
	values map[string]T
}

// NewBucket returns an empty bucket with the given name.
func NewBucket[T any](name string) *Bucket[T] {
	return &Bucket[T]{name: name, values: map[string]T{}}
}

// Name returns the bucket name.
func (b *Bucket[T]) Name() string {
	if b == nil {
		return ""
	}
	return b.name
}

// Set stores v under key and reports whether a previous value was replaced.
func (b *Bucket[T]) Set(key string, v T) (replaced bool) {
	if b == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, replaced = b.values[key]; !replaced {
		b.keys = append(b.keys, key)
	}
	b.values[key] = v

	return replaced
}

// Get returns the value stored under key.
func (b *Bucket[T]) Get(key string) (v T, ok bool) {
	if b == nil {
		return v, false
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok = b.values[key]
	return
}

// Len returns the number of entries.
func (b *Bucket[T]) Len() int {
	if b == nil {
		return 0
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.keys)
}

// Keys returns the entry names in insertion order.
func (b *Bucket[T]) Keys() []string {
	if b == nil {
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]string(nil), b.keys...)
}

// Range calls fn for each entry in insertion order until fn returns false.
// fn runs against a snapshot, so it may call back into the bucket.
func (b *Bucket[T]) Range(fn func(key string, v T) bool) {
	if b == nil {
		return
	}

	b.mu.RLock()
	keys := append([]string(nil), b.keys...)
	values := make([]T, len(keys))
	for i, k := range keys {
		values[i] = b.values[k]
	}
	b.mu.RUnlock()

	for i, k := range keys {
		if !fn(k, values[i]) {
			return
		}
	}
}

// Fields copies a field bucket into graphql.Fields.
func Fields(b *Bucket[*graphql.Field]) graphql.Fields {
	fields := graphql.Fields{}
	b.Range(func(name string, f *graphql.Field) bool {
		fields[name] = f
		return true
	})
	return fields
}
