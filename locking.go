package ring_array_go

import "sync"

// LockingRingArray guards a RingArray with a single mutex. Every call,
// including one that resizes, runs under the lock, so no caller sees the
// store between the old and the new allocation.
type LockingRingArray[T any] struct {
	array *RingArray[T]
	mu    sync.Mutex
}

func NewLockingRingArray[T any](capacity int) (*LockingRingArray[T], error) {
	array, err := NewRingArray[T](capacity)
	if err != nil {
		return nil, err
	}

	return &LockingRingArray[T]{array: array}, nil
}

func (buffer *LockingRingArray[T]) Len() int {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.Len()
}

func (buffer *LockingRingArray[T]) Cap() int {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.Cap()
}

func (buffer *LockingRingArray[T]) Start() int {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.Start()
}

func (buffer *LockingRingArray[T]) Read(index int) (T, error) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.Read(index)
}

func (buffer *LockingRingArray[T]) Set(value T, index int) error {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.Set(value, index)
}

func (buffer *LockingRingArray[T]) Push(element T) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	buffer.array.Push(element)
}

func (buffer *LockingRingArray[T]) Pop() error {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.Pop()
}

func (buffer *LockingRingArray[T]) PopValue() (T, error) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.PopValue()
}

func (buffer *LockingRingArray[T]) Shift() error {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.Shift()
}

func (buffer *LockingRingArray[T]) ShiftValue() (T, error) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.ShiftValue()
}

func (buffer *LockingRingArray[T]) Unshift(element T) {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	buffer.array.Unshift(element)
}

func (buffer *LockingRingArray[T]) Items() []T {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.Items()
}

func (buffer *LockingRingArray[T]) Slots() []T {
	buffer.mu.Lock()
	defer buffer.mu.Unlock()

	return buffer.array.Slots()
}
