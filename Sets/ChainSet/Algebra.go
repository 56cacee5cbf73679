package ChainSet

import (
	"github.com/j-k-maldonado/go-containers/Maps/ChainMap"
)

// The algebra functions assume all three sets share a compatible hash/equal
// vocabulary and that dst is distinct from both operands. dst is rebound to
// a fresh backing map carrying a's hash and equal and NO destroy finalizer:
// an algebra result borrows its elements from the operands, and finalizing a
// borrowed element from two sets would release it twice. Whatever dst held
// before is released under its previous hooks.
//
// A Put failure from the backing map's allocator aborts population and is
// returned as-is; dst is then valid but holds only a prefix of the result.

func rebind[E any](dst, a *ChainSet[E], capacity int) error {
	m, err := ChainMap.New[E, struct{}](a.hash, a.equal,
		ChainMap.WithCapacity[E, struct{}](capacity))
	if err != nil {
		return err
	}
	dst.m.Destroy()
	dst.m, dst.hash, dst.equal = m, a.hash, a.equal
	return nil
}

func (u *ChainSet[E]) addAll(src *ChainSet[E]) error {
	var err error
	src.Range(func(e E) bool {
		err = u.m.Put(e, struct{}{})
		return err == nil
	})
	return err
}

// Union populates dst with every element of a and of b; duplicates collapse
// through the updating path of Put.
func Union[E any](dst, a, b *ChainSet[E]) error {
	if err := rebind(dst, a, 2*(a.Size()+b.Size())); err != nil {
		return err
	}
	if err := dst.addAll(a); err != nil {
		return err
	}
	return dst.addAll(b)
}

// Intersect populates dst with the elements present in both a and b. It
// walks the smaller operand and probes the larger, so it runs in expected
// time proportional to the smaller size.
func Intersect[E any](dst, a, b *ChainSet[E]) error {
	small, large := a, b
	if large.Size() < small.Size() {
		small, large = large, small
	}
	if err := rebind(dst, a, 2*small.Size()); err != nil {
		return err
	}
	var err error
	small.Range(func(e E) bool {
		if large.Has(e) {
			err = dst.m.Put(e, struct{}{})
		}
		return err == nil
	})
	return err
}

// Diff populates dst with the elements of a that are not in b.
func Diff[E any](dst, a, b *ChainSet[E]) error {
	if err := rebind(dst, a, 2*a.Size()); err != nil {
		return err
	}
	var err error
	a.Range(func(e E) bool {
		if !b.Has(e) {
			err = dst.m.Put(e, struct{}{})
		}
		return err == nil
	})
	return err
}

// Subset reports whether every element of a is in b.
func Subset[E any](a, b *ChainSet[E]) bool {
	if a.Size() > b.Size() {
		return false
	}
	ok := true
	a.Range(func(e E) bool {
		ok = b.Has(e)
		return ok
	})
	return ok
}

// Eq reports whether a and b hold exactly the same elements.
func Eq[E any](a, b *ChainSet[E]) bool {
	return a.Size() == b.Size() && Subset(a, b)
}
