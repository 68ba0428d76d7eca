package copyx_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/marcodd23/go-copy-core/pkg/copyx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name          string
	Age           int
	FavoriteBooks []string
	notes         string
}

type node struct {
	Value int
	Next  *node
}

type address struct {
	Street string
	City   string
}

type household struct {
	Billing  *address
	Shipping *address
}

func TestCopyNil(t *testing.T) {
	got, err := copyx.Copy[any](nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	var ptr *person
	gotPtr, err := copyx.Copy(ptr)
	require.NoError(t, err)
	assert.Nil(t, gotPtr)

	var mapping map[string]int
	gotMap, err := copyx.Copy(mapping)
	require.NoError(t, err)
	assert.Nil(t, gotMap)
}

func TestCopyLeavesAreAliased(t *testing.T) {
	gotInt, err := copyx.Copy(42)
	require.NoError(t, err)
	assert.Equal(t, 42, gotInt)

	gotStr, err := copyx.Copy("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", gotStr)

	// A func value is an immutable leaf: the copy refers to the same code.
	fn := func() int { return 42 }
	gotFn, err := copyx.Copy(fn)
	require.NoError(t, err)
	assert.Equal(t, reflect.ValueOf(fn).Pointer(), reflect.ValueOf(gotFn).Pointer())
	assert.Equal(t, 42, gotFn())
}

// Scenario: a record with a text field, a numeric field and a mutable
// list-of-text field. Appending to the original's list must not grow the
// copy's list.
func TestCopyRecordWithMutableList(t *testing.T) {
	original := &person{
		Name:          "Alice",
		Age:           30,
		FavoriteBooks: []string{"Book1", "Book2"},
		notes:         "private notes",
	}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	require.NotSame(t, original, copied)
	assert.Equal(t, original.Name, copied.Name)
	assert.Equal(t, original.Age, copied.Age)
	assert.Equal(t, original.FavoriteBooks, copied.FavoriteBooks)
	assert.Equal(t, original.notes, copied.notes)

	original.FavoriteBooks = append(original.FavoriteBooks, "Book3")
	assert.Len(t, copied.FavoriteBooks, 2)

	copied.FavoriteBooks[0] = "changed"
	assert.Equal(t, "Book1", original.FavoriteBooks[0])
}

// Scenario: a self-referencing record node.Next = node.
func TestCopySelfReference(t *testing.T) {
	original := &node{Value: 1}
	original.Next = original

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	require.NotSame(t, original, copied)
	assert.Same(t, copied, copied.Next)
}

func TestCopyMutualCycle(t *testing.T) {
	first := &node{Value: 1}
	second := &node{Value: 2}
	first.Next = second
	second.Next = first

	copied, err := copyx.Copy(first)
	require.NoError(t, err)

	require.NotSame(t, first, copied)
	require.NotSame(t, second, copied.Next)
	assert.Same(t, copied, copied.Next.Next)
	assert.Equal(t, 2, copied.Next.Value)
}

// Scenario: two fields pointing at the same sub-record keep pointing at one
// (copied) sub-record.
func TestCopyPreservesSharedSubObject(t *testing.T) {
	shared := &address{Street: "Main St 1", City: "Springfield"}
	original := &household{Billing: shared, Shipping: shared}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	require.NotSame(t, shared, copied.Billing)
	assert.Same(t, copied.Billing, copied.Shipping)

	copied.Billing.City = "Shelbyville"
	assert.Equal(t, "Springfield", shared.City)
	assert.Equal(t, "Shelbyville", copied.Shipping.City)
}

// Scenario: a fixed-size array of integers.
func TestCopyArray(t *testing.T) {
	original := [3]int{1, 2, 3}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	assert.Equal(t, original, copied)

	copied[0] = 99
	assert.Equal(t, 1, original[0])
}

func TestCopyPointerToSharedArray(t *testing.T) {
	arr := &[2]int{1, 2}
	original := struct {
		A *[2]int
		B *[2]int
	}{A: arr, B: arr}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	require.NotSame(t, arr, copied.A)
	assert.Same(t, copied.A, copied.B)
}

// Scenario: a mapping whose values are lists; inner lists must be distinct
// objects from the originals.
func TestCopyMapOfSlices(t *testing.T) {
	original := map[string][]int{"x": {1, 2}, "y": {3}}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	assert.Equal(t, original, copied)

	copied["x"][0] = 99
	assert.Equal(t, 1, original["x"][0])

	original["y"] = append(original["y"], 4)
	assert.Len(t, copied["y"], 1)
}

func TestCopySelfReferencingMap(t *testing.T) {
	original := map[string]any{"name": "root"}
	original["self"] = original

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	require.NotEqual(t, reflect.ValueOf(original).Pointer(), reflect.ValueOf(copied).Pointer())

	inner, ok := copied["self"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, reflect.ValueOf(copied).Pointer(), reflect.ValueOf(inner).Pointer())
}

func TestCopySharedSlice(t *testing.T) {
	shared := []string{"a", "b"}
	original := struct {
		First  []string
		Second []string
	}{First: shared, Second: shared}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	// Sharing topology preserved: both fields see one copied backing array.
	assert.Equal(t, reflect.ValueOf(copied.First).Pointer(), reflect.ValueOf(copied.Second).Pointer())
	require.NotEqual(t, reflect.ValueOf(shared).Pointer(), reflect.ValueOf(copied.First).Pointer())

	copied.First[0] = "changed"
	assert.Equal(t, "changed", copied.Second[0])
	assert.Equal(t, "a", shared[0])
}

func TestCopyInterfaceFieldWithUnexportedState(t *testing.T) {
	type hidden struct {
		secret string
		count  int
	}

	type holder struct {
		Value any
	}

	original := holder{Value: hidden{secret: "s3cret", count: 2}}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	require.IsType(t, hidden{}, copied.Value)
	assert.Equal(t, original.Value, copied.Value)
}

func TestCopyRealWorldStruct(t *testing.T) {
	type event struct {
		ID        string
		CreatedAt time.Time
		Payload   map[string]any
	}

	original := event{
		ID:        "evt-1",
		CreatedAt: time.Now(),
		Payload:   map[string]any{"amount": 10.5, "tags": []string{"a"}},
	}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	assert.True(t, original.CreatedAt.Equal(copied.CreatedAt))
	assert.Equal(t, original.Payload, copied.Payload)

	copied.Payload["amount"] = 99.9
	assert.Equal(t, 10.5, original.Payload["amount"])
}

func TestCopyNilFieldsStayNil(t *testing.T) {
	original := person{Name: "Bob"}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	assert.Nil(t, copied.FavoriteBooks)
	assert.Equal(t, "Bob", copied.Name)
}

func TestCopyChannel(t *testing.T) {
	type worker struct {
		Jobs chan int
	}

	original := worker{Jobs: make(chan int, 3)}

	copied, err := copyx.Copy(original)
	require.NoError(t, err)

	require.NotEqual(t, reflect.ValueOf(original.Jobs).Pointer(), reflect.ValueOf(copied.Jobs).Pointer())
	assert.Equal(t, 3, cap(copied.Jobs))
}

func TestCopyDirectionalChannelFails(t *testing.T) {
	type worker struct {
		Out chan<- int
	}

	original := worker{Out: make(chan int)}

	_, err := copyx.Copy(original)
	require.Error(t, err)

	var containerErr *copyx.UnsupportedContainerError
	assert.ErrorAs(t, err, &containerErr)
}

func TestMustCopyPanicsOnFailure(t *testing.T) {
	type worker struct {
		Out chan<- int
	}

	assert.Panics(t, func() {
		copyx.MustCopy(worker{Out: make(chan int)})
	})
}

func TestCopyInto(t *testing.T) {
	original := person{Name: "Alice", FavoriteBooks: []string{"Book1"}}

	var copied person
	err := copyx.CopyInto(&copied, original)
	require.NoError(t, err)

	assert.Equal(t, original, copied)

	original.FavoriteBooks[0] = "changed"
	assert.Equal(t, "Book1", copied.FavoriteBooks[0])
}

func TestCopyIntoRejectsBadDestination(t *testing.T) {
	var copied person

	assert.Error(t, copyx.CopyInto(copied, person{}))
	assert.Error(t, copyx.CopyInto(nil, person{}))
	assert.Error(t, copyx.CopyInto(&copied, "not a person"))
}

func TestCopyIntoNilSourceZeroesDestination(t *testing.T) {
	copied := person{Name: "Alice"}

	err := copyx.CopyInto(&copied, nil)
	require.NoError(t, err)
	assert.Equal(t, person{}, copied)
}

func TestCopyDeeplyNestedGraph(t *testing.T) {
	head := &node{Value: 0}
	current := head
	for i := 1; i < 1000; i++ {
		current.Next = &node{Value: i}
		current = current.Next
	}

	copied, err := copyx.Copy(head)
	require.NoError(t, err)

	originalCursor, copiedCursor := head, copied
	for originalCursor != nil {
		require.NotSame(t, originalCursor, copiedCursor)
		require.Equal(t, originalCursor.Value, copiedCursor.Value)
		originalCursor, copiedCursor = originalCursor.Next, copiedCursor.Next
	}

	assert.Nil(t, copiedCursor)
}
