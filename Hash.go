package Go_Containers

// HashString digests s with the PJW accumulator: each byte shifts the state
// left by 4 and is added in; a non-zero high nibble is folded back into the
// low byte and cleared.
func HashString(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h<<4 + uint32(s[i])
		if high := h & 0xf0000000; high != 0 {
			h ^= high >> 24
			h ^= high
		}
	}
	return h
}

// HashBytes is HashString over a raw byte slice.
func HashBytes(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h = h<<4 + uint32(c)
		if high := h & 0xf0000000; high != 0 {
			h ^= high >> 24
			h ^= high
		}
	}
	return h
}

// HashInt mixes a machine integer into a 32-bit digest by folding the high
// word into the low word.
func HashInt(v int) uint32 {
	x := uint64(int64(v))
	return uint32(x) ^ uint32(x>>32)
}

// Equal reports a == b. It is the default equivalence predicate for keys of
// comparable type.
func Equal[T comparable](a, b T) bool {
	return a == b
}
