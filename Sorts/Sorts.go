// Package Sorts implements the classic comparison sorts over slices of any
// element type, ordered by a caller-supplied less predicate. Quick and Merge
// are the practical choices; the quadratic ones exist for small inputs and
// for cross-checking.
package Sorts

// Insertion sorts s in place. Stable.
func Insertion[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i
		for ; j > 0 && less(v, s[j-1]); j-- {
			s[j] = s[j-1]
		}
		s[j] = v
	}
}

// Selection sorts s in place. Not stable.
func Selection[T any](s []T, less func(a, b T) bool) {
	for i := 0; i < len(s)-1; i++ {
		min := i
		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[min]) {
				min = j
			}
		}
		s[i], s[min] = s[min], s[i]
	}
}

// Bubble sorts s in place, stopping early on an already ordered pass.
// Stable.
func Bubble[T any](s []T, less func(a, b T) bool) {
	for n := len(s); n > 1; {
		swapped := 0
		for i := 1; i < n; i++ {
			if less(s[i], s[i-1]) {
				s[i-1], s[i] = s[i], s[i-1]
				swapped = i
			}
		}
		n = swapped
	}
}

// Quick sorts s in place with Hoare partitioning and a median-of-three
// pivot, falling back to Insertion below a small cutoff. Not stable.
func Quick[T any](s []T, less func(a, b T) bool) {
	for len(s) > 12 {
		p := hoare(s, less)
		// Recurse into the smaller half, loop on the larger one.
		if p+1 < len(s)-p-1 {
			Quick(s[:p+1], less)
			s = s[p+1:]
		} else {
			Quick(s[p+1:], less)
			s = s[:p+1]
		}
	}
	Insertion(s, less)
}

func hoare[T any](s []T, less func(a, b T) bool) int {
	m := len(s) / 2
	if less(s[m], s[0]) {
		s[0], s[m] = s[m], s[0]
	}
	if less(s[len(s)-1], s[m]) {
		s[m], s[len(s)-1] = s[len(s)-1], s[m]
		if less(s[m], s[0]) {
			s[0], s[m] = s[m], s[0]
		}
	}
	pivot := s[m]
	i, j := -1, len(s)
	for {
		for i++; less(s[i], pivot); i++ {
		}
		for j--; less(pivot, s[j]); j-- {
		}
		if i >= j {
			return j
		}
		s[i], s[j] = s[j], s[i]
	}
}

// Merge sorts s with one auxiliary buffer of len(s). Stable.
func Merge[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	mergeInto(s, buf, less)
}

func mergeInto[T any](s, buf []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	m := len(s) / 2
	mergeInto(s[:m], buf[:m], less)
	mergeInto(s[m:], buf[m:], less)
	copy(buf, s)
	i, j := 0, m
	for k := 0; k < len(s); k++ {
		if i < m && (j >= len(s) || !less(buf[j], buf[i])) {
			s[k] = buf[i]
			i++
		} else {
			s[k] = buf[j]
			j++
		}
	}
}
