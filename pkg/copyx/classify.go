package copyx

import "reflect"

// kind is the copy strategy category a runtime value falls into.
// The classification order is fixed: null checks come first, then leaves,
// then the container shapes, and records last.
type kind int

const (
	kindNull kind = iota
	kindLeaf
	kindPointer
	kindInterface
	kindArray
	kindSequence
	kindChannel
	kindMapping
	kindRecord
)

// classify categorizes a runtime value. It is a pure function of the
// value's reflect.Kind and nil-ness and has no side effects.
//
// Leaves are values that are never mutated after construction (scalars,
// strings, func values), so sharing them between original and copy is safe.
// Pointers and interfaces are indirection, not data: the traversal engine
// resolves them and classifies the pointee.
func classify(v reflect.Value) kind {
	if !v.IsValid() {
		return kindNull
	}

	switch v.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String,
		reflect.Func,
		reflect.UnsafePointer:
		return kindLeaf
	case reflect.Ptr:
		if v.IsNil() {
			return kindNull
		}

		return kindPointer
	case reflect.Interface:
		if v.IsNil() {
			return kindNull
		}

		return kindInterface
	case reflect.Array:
		return kindArray
	case reflect.Slice:
		if v.IsNil() {
			return kindNull
		}

		return kindSequence
	case reflect.Chan:
		if v.IsNil() {
			return kindNull
		}

		return kindChannel
	case reflect.Map:
		if v.IsNil() {
			return kindNull
		}

		return kindMapping
	default:
		return kindRecord
	}
}
