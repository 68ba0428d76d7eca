package copyx

import "reflect"

// The instantiator produces empty, unpopulated shells of concrete runtime
// types without running any domain construction logic. Go's reflect package
// gives a true zero-instance capability, so there is no constructor-guessing
// fallback; the recover guards translate the panics reflect uses for
// unsatisfiable requests into the typed error taxonomy.

// newShell returns a pointer to a freshly zeroed instance of t.
func newShell(t reflect.Type) (v reflect.Value, err error) {
	defer recoverConstruction(t, &err)

	return reflect.New(t), nil
}

// newSequence returns an empty sequence of the same concrete slice type as
// the original, pre-sized so elements can be filled in place.
func newSequence(t reflect.Type, length, capacity int) (v reflect.Value, err error) {
	defer recoverContainer(t, &err)

	return reflect.MakeSlice(t, length, capacity), nil
}

// newMapping returns an empty mapping of the same concrete map type as the
// original.
func newMapping(t reflect.Type, size int) (v reflect.Value, err error) {
	defer recoverContainer(t, &err)

	return reflect.MakeMapWithSize(t, size), nil
}

// newChannel returns a fresh unbuffered-or-buffered channel of the same
// concrete type and capacity. Directional channel types have no empty
// instance (reflect.MakeChan only produces bidirectional channels).
func newChannel(t reflect.Type, buffer int) (v reflect.Value, err error) {
	if t.ChanDir() != reflect.BothDir {
		return reflect.Value{}, NewUnsupportedContainerError("no empty instance for directional channel type %s", t)
	}

	defer recoverContainer(t, &err)

	return reflect.MakeChan(t, buffer), nil
}

func recoverConstruction(t reflect.Type, err *error) {
	if r := recover(); r != nil {
		*err = NewConstructionError("cannot instantiate %s: %v", t, r)
	}
}

func recoverContainer(t reflect.Type, err *error) {
	if r := recover(); r != nil {
		*err = NewUnsupportedContainerError("cannot create empty container of type %s: %v", t, r)
	}
}
