package ring_array_go

import "fmt"

type RingArray[T any] struct {
	store  []T
	start  int // Physical slot of logical index 0
	length int
}

func NewRingArray[T any](capacity int) (*RingArray[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	return &RingArray[T]{
		store:  make([]T, capacity),
		start:  0,
		length: 0,
	}, nil
}

func (array *RingArray[T]) Len() int {
	return array.length
}

func (array *RingArray[T]) Cap() int {
	return len(array.store)
}

func (array *RingArray[T]) Start() int {
	return array.start
}

func (array *RingArray[T]) getSlot(index int) int {
	return (array.start + index) % array.Cap()
}

// Doubles the capacity and moves the live elements to slots 0..length.
func (array *RingArray[T]) resize() {
	capacity := array.Cap()
	store := make([]T, 2*capacity)

	end := array.start + array.length
	if end <= capacity {
		copy(store, array.store[array.start:end])
	} else {
		firstPart := copy(store, array.store[array.start:])
		copy(store[firstPart:], array.store[:end-capacity])
	}

	array.store = store
	array.start = 0
}

func (array *RingArray[T]) Read(index int) (T, error) {
	if index < 0 || index >= array.length {
		var zero T
		return zero, fmt.Errorf("%w: read %d of %d", ErrIndexOutOfRange, index, array.length)
	}

	return array.store[array.getSlot(index)], nil
}

// Set overwrites the slot at the given logical index, growing the capacity
// until index fits. The length is left alone: a value written at or past Len
// stays invisible to Read and is overwritten by the next Push that reaches it.
func (array *RingArray[T]) Set(value T, index int) error {
	if index < 0 {
		return fmt.Errorf("%w: set %d", ErrIndexOutOfRange, index)
	}

	for index >= array.Cap() {
		array.resize()
	}

	array.store[array.getSlot(index)] = value
	return nil
}

func (array *RingArray[T]) Push(element T) {
	if array.length == array.Cap() {
		array.resize()
	}

	array.store[array.getSlot(array.length)] = element
	array.length++
}

func (array *RingArray[T]) Pop() error {
	_, err := array.PopValue()
	return err
}

func (array *RingArray[T]) PopValue() (T, error) {
	var zero T
	if array.length == 0 {
		return zero, fmt.Errorf("%w: pop", ErrEmptyContainer)
	}

	slot := array.getSlot(array.length - 1)
	element := array.store[slot]
	array.store[slot] = zero
	array.length--

	return element, nil
}

func (array *RingArray[T]) Shift() error {
	_, err := array.ShiftValue()
	return err
}

func (array *RingArray[T]) ShiftValue() (T, error) {
	var zero T
	if array.length == 0 {
		return zero, fmt.Errorf("%w: shift", ErrEmptyContainer)
	}

	element := array.store[array.start]
	array.store[array.start] = zero
	array.start = (array.start + 1) % array.Cap()
	array.length--

	return element, nil
}

func (array *RingArray[T]) Unshift(element T) {
	if array.length == array.Cap() {
		array.resize()
	}

	capacity := array.Cap()
	start := ((array.start-1)%capacity + capacity) % capacity

	array.store[start] = element
	array.start = start
	array.length++
}

// Returns the logical sequence from front to back.
func (array *RingArray[T]) Items() []T {
	items := make([]T, array.length)

	capacity := array.Cap()
	end := array.start + array.length
	if end <= capacity {
		copy(items, array.store[array.start:end])
	} else {
		firstPart := copy(items, array.store[array.start:])
		copy(items[firstPart:], array.store[:end-capacity])
	}

	return items
}

// Returns a copy of the physical store. Vacated slots hold the zero value.
func (array *RingArray[T]) Slots() []T {
	slots := make([]T, len(array.store))
	copy(slots, array.store)
	return slots
}
