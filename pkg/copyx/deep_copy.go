// Package copyx produces fully independent structural copies of arbitrary
// value graphs. No mutable sub-object is shared between the original and the
// copy, except where the original itself shared one between multiple parents;
// that sharing topology, including cycles, is preserved exactly.
package copyx

import (
	"reflect"
	"unsafe"

	"github.com/pkg/errors"
)

// Copy returns a deep copy of value. The copy has the same concrete runtime
// shape as the original and shares no mutable state with it. Immutable leaf
// values (scalars, strings, func values) are aliased unchanged. A failure is
// total: no partial copy is returned.
func Copy[T any](value T) (T, error) {
	var out T

	src := reflect.ValueOf(value)
	if !src.IsValid() {
		return out, nil
	}

	dst := reflect.New(src.Type()).Elem()
	if err := deepCopyValue(dst, addressableView(src), newRegistry()); err != nil {
		return out, err
	}

	out, _ = dst.Interface().(T)

	return out, nil
}

// MustCopy is Copy for values the caller controls; it panics on failure.
func MustCopy[T any](value T) T {
	out, err := Copy(value)
	if err != nil {
		panic(err)
	}

	return out
}

// CopyInto performs a deep copy from src into the location dst points to.
// dst must be a non-nil pointer whose element type src is assignable to.
// It is the pointer-based form of Copy kept for call sites that own the
// destination.
func CopyInto(dst, src any) error {
	dstValue := reflect.ValueOf(dst)
	if dstValue.Kind() != reflect.Ptr || dstValue.IsNil() {
		return errors.New("copyx: dst must be a non-nil pointer")
	}

	srcValue := reflect.ValueOf(src)
	if !srcValue.IsValid() {
		dstValue.Elem().Set(reflect.Zero(dstValue.Elem().Type()))
		return nil
	}

	if !srcValue.Type().AssignableTo(dstValue.Elem().Type()) {
		return errors.Errorf("copyx: cannot copy %s into %s", srcValue.Type(), dstValue.Elem().Type())
	}

	out := reflect.New(srcValue.Type()).Elem()
	if err := deepCopyValue(out, addressableView(srcValue), newRegistry()); err != nil {
		return err
	}

	dstValue.Elem().Set(out)

	return nil
}

// deepCopyValue is the recursive traversal engine. dst is an addressable,
// zeroed slot of the same type as src; src is addressable so unexported
// struct fields below it stay reachable. For every non-leaf case the copy is
// registered before its children are filled in, which is what terminates
// cycles and preserves shared references.
func deepCopyValue(dst, src reflect.Value, reg *registry) error {
	switch classify(src) {
	case kindNull:
		// dst is already the zero value of its type.
		return nil
	case kindLeaf:
		dst.Set(src)
		return nil
	case kindPointer:
		return copyPointer(dst, src, reg)
	case kindInterface:
		return copyInterface(dst, src, reg)
	case kindArray:
		return copyArray(dst, src, reg)
	case kindSequence:
		return copySequence(dst, src, reg)
	case kindChannel:
		return copyChannel(dst, src, reg)
	case kindMapping:
		return copyMapping(dst, src, reg)
	default:
		return copyRecord(dst, src, reg)
	}
}

func copyPointer(dst, src reflect.Value, reg *registry) error {
	id, _ := identityOf(src)
	if dup, ok := reg.lookup(id); ok {
		dst.Set(dup)
		return nil
	}

	shell, err := newShell(src.Type().Elem())
	if err != nil {
		return err
	}

	// Named pointer types: reflect.New yields *E, convert back to the
	// original concrete pointer type.
	if shell.Type() != src.Type() {
		shell = shell.Convert(src.Type())
	}

	reg.register(id, shell)
	dst.Set(shell)

	return deepCopyValue(shell.Elem(), src.Elem(), reg)
}

func copyInterface(dst, src reflect.Value, reg *registry) error {
	elem := src.Elem()

	out := reflect.New(elem.Type()).Elem()
	if err := deepCopyValue(out, addressableView(elem), reg); err != nil {
		return err
	}

	dst.Set(out)

	return nil
}

// copyArray copies element-wise into dst. A Go array reached by value has no
// allocation identity, so there is nothing to register; shared arrays only
// exist behind pointers, which copyPointer registers.
func copyArray(dst, src reflect.Value, reg *registry) error {
	for i := 0; i < src.Len(); i++ {
		if err := deepCopyValue(dst.Index(i), src.Index(i), reg); err != nil {
			return err
		}
	}

	return nil
}

func copySequence(dst, src reflect.Value, reg *registry) error {
	id, _ := identityOf(src)
	if dup, ok := reg.lookup(id); ok {
		dst.Set(dup)
		return nil
	}

	seq, err := newSequence(src.Type(), src.Len(), src.Cap())
	if err != nil {
		return err
	}

	reg.register(id, seq)
	dst.Set(seq)

	for i := 0; i < src.Len(); i++ {
		if err := deepCopyValue(seq.Index(i), src.Index(i), reg); err != nil {
			return err
		}
	}

	return nil
}

// copyChannel creates a fresh empty channel of the same type and buffer
// capacity. In-flight elements are live communication state, not structure,
// and are not transferred.
func copyChannel(dst, src reflect.Value, reg *registry) error {
	id, _ := identityOf(src)
	if dup, ok := reg.lookup(id); ok {
		dst.Set(dup)
		return nil
	}

	ch, err := newChannel(src.Type(), src.Cap())
	if err != nil {
		return err
	}

	reg.register(id, ch)
	dst.Set(ch)

	return nil
}

func copyMapping(dst, src reflect.Value, reg *registry) error {
	id, _ := identityOf(src)
	if dup, ok := reg.lookup(id); ok {
		dst.Set(dup)
		return nil
	}

	mapping, err := newMapping(src.Type(), src.Len())
	if err != nil {
		return err
	}

	reg.register(id, mapping)
	dst.Set(mapping)

	iter := src.MapRange()
	for iter.Next() {
		keyCopy := reflect.New(iter.Key().Type()).Elem()
		if err := deepCopyValue(keyCopy, addressableView(iter.Key()), reg); err != nil {
			return err
		}

		valueCopy := reflect.New(iter.Value().Type()).Elem()
		if err := deepCopyValue(valueCopy, addressableView(iter.Value()), reg); err != nil {
			return err
		}

		mapping.SetMapIndex(keyCopy, valueCopy)
	}

	return nil
}

// copyRecord copies every field declared on the concrete struct type,
// embedded types included, reading and writing unexported fields through
// their addresses to bypass visibility.
func copyRecord(dst, src reflect.Value, reg *registry) error {
	recordType := src.Type()
	for i := 0; i < recordType.NumField(); i++ {
		srcField := src.Field(i)
		dstField := dst.Field(i)

		if !dstField.CanSet() {
			var err error

			if srcField, err = exportField(srcField); err != nil {
				return NewFieldAccessErrorWrapper(err, "cannot read field %s of %s", recordType.Field(i).Name, recordType)
			}

			if dstField, err = exportField(dstField); err != nil {
				return NewFieldAccessErrorWrapper(err, "cannot write field %s of %s", recordType.Field(i).Name, recordType)
			}
		}

		if err := deepCopyValue(dstField, srcField, reg); err != nil {
			return err
		}
	}

	return nil
}

// exportField re-derives a field value from its address, clearing the
// read-only flag reflect puts on unexported fields.
func exportField(field reflect.Value) (reflect.Value, error) {
	if !field.CanAddr() {
		return reflect.Value{}, errors.New("field is not addressable")
	}

	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem(), nil
}

// addressableView returns v itself when addressable, otherwise an
// addressable copy. The engine needs addressable sources so that unexported
// fields of structs reached through interfaces or map entries can be read.
func addressableView(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}

	view := reflect.New(v.Type()).Elem()
	view.Set(v)

	return view
}
