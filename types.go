package ring_array_go

import "errors"

// RingArrayInterface defines the public API for the ring array.
//
// Logical indexes are measured from the front of the sequence; internally the
// array maps logical index i to physical slot (start + i) mod capacity.
//
// Notes on semantics:
//   - Push and Unshift double the capacity when the array is full and
//     re-linearize the contents so the front sits at slot 0.
//   - Set is a raw positional write. It grows the capacity until index fits
//     but never changes Len, so writing at or beyond Len does not make the
//     value readable. Use Push or Unshift to extend the sequence.
//   - Pop and Shift discard the removed element; PopValue and ShiftValue
//     return it.
//   - A failing call leaves the array untouched.
//
// RingArray is not safe for concurrent use; LockingRingArray is.
type RingArrayInterface[T any] interface {
	Len() int
	Cap() int
	Start() int
	Read(index int) (T, error)
	Set(value T, index int) error
	Push(element T)
	Pop() error
	PopValue() (T, error)
	Shift() error
	ShiftValue() (T, error)
	Unshift(element T)
	Items() []T
	Slots() []T
}

var _ RingArrayInterface[int] = &RingArray[int]{}
var _ RingArrayInterface[int] = &LockingRingArray[int]{}

// ErrInvalidCapacity is returned when an array is constructed with a
// capacity below 1.
var ErrInvalidCapacity = errors.New("ringarray: invalid capacity")

// ErrIndexOutOfRange indicates a logical index outside the readable or
// writable range.
var ErrIndexOutOfRange = errors.New("ringarray: index out of range")

// ErrEmptyContainer is returned by removals on an empty array.
var ErrEmptyContainer = errors.New("ringarray: empty container")
