package slx

import (
	"cmp"
	"slices"
)

func One[T any](v T) []T {
	return []T{v}
}

func Make[T any](v ...T) []T {
	return slices.Clone(v)
}

func Ptr[T any](v T) *T {
	return &v
}

// Clamp bounds v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// ClampPtr stores the clamped value of v in a new pointer.
func ClampPtr[T cmp.Ordered](v, lo, hi T) *T {
	return Ptr(Clamp(v, lo, hi))
}

// Value dereferences ptr, falling back to def when ptr is nil.
func Value[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}

// Override gives other when set, keeps ptr otherwise.
func Override[T any](ptr, other *T) *T {
	if other != nil {
		v := *other
		return &v
	}
	return ptr
}
