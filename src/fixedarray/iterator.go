package fixedarray

import "iter"

// Iterator is a cursor into a FixedArray. Forward iterators run from Begin
// to End; reverse iterators run from RBegin to REnd. The end positions are
// one past the last element in the direction of travel and must not be
// dereferenced.
type Iterator[T any] struct {
	arr  *FixedArray[T]
	pos  int
	step int
}

func (a *FixedArray[T]) Begin() Iterator[T] {
	return Iterator[T]{arr: a, pos: 0, step: 1}
}

func (a *FixedArray[T]) End() Iterator[T] {
	return Iterator[T]{arr: a, pos: len(a.data), step: 1}
}

func (a *FixedArray[T]) RBegin() Iterator[T] {
	return Iterator[T]{arr: a, pos: len(a.data) - 1, step: -1}
}

func (a *FixedArray[T]) REnd() Iterator[T] {
	return Iterator[T]{arr: a, pos: -1, step: -1}
}

// Next returns the iterator advanced one element in its direction.
func (it Iterator[T]) Next() Iterator[T] {
	it.pos += it.step
	return it
}

// Prev returns the iterator moved one element against its direction.
func (it Iterator[T]) Prev() Iterator[T] {
	it.pos -= it.step
	return it
}

func (it Iterator[T]) Value() T {
	return it.arr.data[it.pos]
}

// Set writes through the iterator into the array.
func (it Iterator[T]) Set(value T) {
	it.arr.data[it.pos] = value
}

func (it Iterator[T]) Ptr() *T {
	return &it.arr.data[it.pos]
}

// Index is the storage position the iterator refers to.
func (it Iterator[T]) Index() int {
	return it.pos
}

// Equal reports whether both iterators refer to the same position of the
// same array in the same direction.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.arr == other.arr && it.pos == other.pos && it.step == other.step
}

// Distance is the number of Next calls needed to get from first to last.
func Distance[T any](first, last Iterator[T]) int {
	return (last.pos - first.pos) * first.step
}

// All yields index/value pairs front to back.
func (a *FixedArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields index/value pairs back to front.
func (a *FixedArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

func (a *FixedArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}
