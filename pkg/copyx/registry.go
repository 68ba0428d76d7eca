package copyx

import (
	"fmt"
	"reflect"
	"unsafe"
)

// identity is the allocation identity of an original value. The key is the
// raw data pointer plus the concrete type, never the value's own equality or
// hash logic. Slices additionally carry their length, because two slice
// headers can share one backing array at different lengths and must not be
// treated as the same object.
type identity struct {
	ptr unsafe.Pointer
	typ reflect.Type
	len int
}

// identityOf returns the allocation identity of v and whether v has one.
// Only reference shapes (pointers, slices, maps, channels) have an identity;
// values reached by value are copied per visit and never shared.
func identityOf(v reflect.Value) (identity, bool) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan:
		return identity{ptr: unsafe.Pointer(v.Pointer()), typ: v.Type()}, true
	case reflect.Slice:
		return identity{ptr: unsafe.Pointer(v.Pointer()), typ: v.Type(), len: v.Len()}, true
	default:
		return identity{}, false
	}
}

// registry maps original-value identities to their in-progress or completed
// copies. It is both the memoization cache and the cycle-breaking mechanism:
// a copy is registered before its children are filled in, so a reference
// back to an already-visited value resolves to the registered shell instead
// of recursing forever. One registry lives for exactly one top-level copy
// call and is discarded afterwards.
type registry struct {
	copies map[identity]reflect.Value
}

func newRegistry() *registry {
	return &registry{copies: make(map[identity]reflect.Value)}
}

// lookup returns the registered copy for id, if any.
func (r *registry) lookup(id identity) (reflect.Value, bool) {
	dup, ok := r.copies[id]

	return dup, ok
}

// register records the copy for an identity. Registering the same identity
// twice can only come from a cycle-handling bug in the traversal engine,
// never from user data, so it panics instead of returning an error.
func (r *registry) register(id identity, dup reflect.Value) {
	if _, exists := r.copies[id]; exists {
		panic(fmt.Sprintf("copyx: identity of %s registered twice", id.typ))
	}

	r.copies[id] = dup
}
