package Go_Containers

import (
	"math/bits"
)

// NewBitSet creates a BitSet capable of holding at least size bits.
func NewBitSet(size int) BitSet {
	return BitSet{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitSet is a word-packed set of small non-negative integers.
type BitSet struct {
	bits []uint
}

func (u BitSet) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitSet) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitSet) Set(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitSet) Clr(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Clear lowers every bit.
func (u BitSet) Clear() {
	for i := range u.bits {
		u.bits[i] = 0
	}
}

// First returns the index of the lowest set bit, or -1 if no bit is set.
func (u BitSet) First() int {
	for i, w := range u.bits {
		if w != 0 {
			return i*bits.UintSize + bits.TrailingZeros(w)
		}
	}
	return -1
}

// Count returns the number of set bits.
func (u BitSet) Count() int {
	n := 0
	for _, w := range u.bits {
		n += bits.OnesCount(w)
	}
	return n
}
