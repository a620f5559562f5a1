package fixedarray

import "cmp"

// Equal reports whether lhs and rhs have the same size and equal elements.
func Equal[T comparable](lhs, rhs *FixedArray[T]) bool {
	return EqualFunc(lhs, rhs, func(a, b T) bool { return a == b })
}

// NotEqual is !Equal.
func NotEqual[T comparable](lhs, rhs *FixedArray[T]) bool {
	return !Equal(lhs, rhs)
}

// Less reports whether every element of lhs is strictly less than the
// element of rhs at the same index. The order is componentwise, not
// lexicographic, and only partial: From(1, 2) and From(2, 1) are neither
// equal nor less in either direction. For empty arrays Less is vacuously
// true. It panics with ErrSizeMismatch when the sizes differ.
func Less[T cmp.Ordered](lhs, rhs *FixedArray[T]) bool {
	return LessFunc(lhs, rhs, func(a, b T) bool { return a < b })
}

// LessEqual is Less || Equal.
func LessEqual[T cmp.Ordered](lhs, rhs *FixedArray[T]) bool {
	return Less(lhs, rhs) || Equal(lhs, rhs)
}

// Greater is !LessEqual, not a componentwise lhs[i] > rhs[i]. Arrays that
// are incomparable under Less, such as From(1, 2) and From(2, 1), report
// Greater (and GreaterEqual) as true in both directions. Empty arrays are
// never Greater.
func Greater[T cmp.Ordered](lhs, rhs *FixedArray[T]) bool {
	return !LessEqual(lhs, rhs)
}

// GreaterEqual is Greater || Equal.
func GreaterEqual[T cmp.Ordered](lhs, rhs *FixedArray[T]) bool {
	return Greater(lhs, rhs) || Equal(lhs, rhs)
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](lhs, rhs *FixedArray[T], eq func(a, b T) bool) bool {
	if len(lhs.data) != len(rhs.data) {
		return false
	}
	for i := range lhs.data {
		if !eq(lhs.data[i], rhs.data[i]) {
			return false
		}
	}
	return true
}

// LessFunc is Less with a caller-supplied strict element order.
func LessFunc[T any](lhs, rhs *FixedArray[T], less func(a, b T) bool) bool {
	mustMatch(lhs, rhs)
	for i := range lhs.data {
		if !less(lhs.data[i], rhs.data[i]) {
			return false
		}
	}
	return true
}

// LessEqualFunc, GreaterFunc and GreaterEqualFunc derive from LessFunc and
// EqualFunc the same way LessEqual, Greater and GreaterEqual do.
func LessEqualFunc[T any](lhs, rhs *FixedArray[T], less, eq func(a, b T) bool) bool {
	return LessFunc(lhs, rhs, less) || EqualFunc(lhs, rhs, eq)
}

func GreaterFunc[T any](lhs, rhs *FixedArray[T], less, eq func(a, b T) bool) bool {
	return !LessEqualFunc(lhs, rhs, less, eq)
}

func GreaterEqualFunc[T any](lhs, rhs *FixedArray[T], less, eq func(a, b T) bool) bool {
	return GreaterFunc(lhs, rhs, less, eq) || EqualFunc(lhs, rhs, eq)
}

func mustMatch[T any](lhs, rhs *FixedArray[T]) {
	if len(lhs.data) != len(rhs.data) {
		panic(sizeMismatch(len(lhs.data), len(rhs.data)))
	}
}
