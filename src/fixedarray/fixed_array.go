// Package fixedarray provides FixedArray, a sequence whose length is fixed
// when it is constructed. The backing block is allocated once and never
// grows, shrinks, or moves.
package fixedarray

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("FixedArray: index out of range")
	ErrSizeMismatch = errors.New("FixedArray: size mismatch")
)

// FixedArray holds exactly Size() elements of type T in storage order.
// It is not safe for concurrent use.
type FixedArray[T any] struct {
	data []T
}

// New returns an array of size elements, each the zero value of T.
// A negative size yields an empty array.
func New[T any](size int) *FixedArray[T] {
	if size < 0 {
		size = 0
	}
	return &FixedArray[T]{data: make([]T, size)}
}

// From returns an array sized to values holding a copy of them.
func From[T any](values ...T) *FixedArray[T] {
	a := New[T](len(values))
	copy(a.data, values)
	return a
}

// Clone returns an independent element-wise copy of a.
func (a *FixedArray[T]) Clone() *FixedArray[T] {
	return From(a.data...)
}

// Assign overwrites every element of a with the matching element of src.
// Both arrays must have the same size.
func (a *FixedArray[T]) Assign(src *FixedArray[T]) error {
	if len(a.data) != len(src.data) {
		return sizeMismatch(len(a.data), len(src.data))
	}
	copy(a.data, src.data)
	return nil
}

func (a *FixedArray[T]) Size() int {
	return len(a.data)
}

// MaxSize equals Size; capacity never changes.
func (a *FixedArray[T]) MaxSize() int {
	return len(a.data)
}

func (a *FixedArray[T]) IsEmpty() bool {
	return len(a.data) == 0
}

// At is the bounds-checked read.
func (a *FixedArray[T]) At(pos int) (T, error) {
	var zero T
	if err := a.check(pos); err != nil {
		return zero, err
	}
	return a.data[pos], nil
}

// SetAt is the bounds-checked write.
func (a *FixedArray[T]) SetAt(pos int, value T) error {
	if err := a.check(pos); err != nil {
		return err
	}
	a.data[pos] = value
	return nil
}

// Get reads without a container-level bounds check. pos must be in [0, Size()).
func (a *FixedArray[T]) Get(pos int) T {
	return a.data[pos]
}

// Set writes without a container-level bounds check. pos must be in [0, Size()).
func (a *FixedArray[T]) Set(pos int, value T) {
	a.data[pos] = value
}

// Ref returns a pointer to the element at pos, unchecked.
func (a *FixedArray[T]) Ref(pos int) *T {
	return &a.data[pos]
}

// Front requires a non-empty array.
func (a *FixedArray[T]) Front() T {
	return a.data[0]
}

// Back requires a non-empty array.
func (a *FixedArray[T]) Back() T {
	return a.data[len(a.data)-1]
}

// Data exposes the backing storage. Writes to the returned slice are writes
// to the array. It is nil for an empty array.
func (a *FixedArray[T]) Data() []T {
	if len(a.data) == 0 {
		return nil
	}
	return a.data
}

func (a *FixedArray[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Swap exchanges the contents of a and other one element at a time.
func (a *FixedArray[T]) Swap(other *FixedArray[T]) error {
	if len(a.data) != len(other.data) {
		return sizeMismatch(len(a.data), len(other.data))
	}
	for i := range a.data {
		a.data[i], other.data[i] = other.data[i], a.data[i]
	}
	return nil
}

func (a *FixedArray[T]) check(pos int) error {
	if pos < 0 || pos >= len(a.data) {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, pos, len(a.data))
	}
	return nil
}

func sizeMismatch(want, got int) error {
	return fmt.Errorf("%w: want %d, got %d", ErrSizeMismatch, want, got)
}
