package Go_Containers

import (
	"math/rand"
	"testing"
)

func TestBitSet(t *testing.T) {
	b := NewBitSet(100)
	if b.Len() < 100 {
		t.Errorf("Len() = %d, want >= 100", b.Len())
	}
	if b.First() != -1 || b.Count() != 0 {
		t.Error("fresh BitSet is not empty")
	}

	b.Set(3)
	b.Set(64)
	b.Set(99)
	if !b.Get(3) || !b.Get(64) || !b.Get(99) || b.Get(4) {
		t.Error("Get disagrees with Set")
	}
	if b.First() != 3 {
		t.Errorf("First() = %d, want 3", b.First())
	}
	if b.Count() != 3 {
		t.Errorf("Count() = %d, want 3", b.Count())
	}

	b.Clr(3)
	if b.Get(3) {
		t.Error("Clr left the bit up")
	}
	if b.First() != 64 {
		t.Errorf("First() = %d, want 64", b.First())
	}

	b.Clear()
	if b.Count() != 0 || b.First() != -1 {
		t.Error("Clear left bits up")
	}
}

func TestBitSetRandom(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	b := NewBitSet(512)
	content := make(map[int]struct{})
	for i := 0; i < 5000; i++ {
		x := rg.Intn(512)
		if rg.Intn(2) == 0 {
			b.Set(x)
			content[x] = struct{}{}
		} else {
			b.Clr(x)
			delete(content, x)
		}
	}
	for i := 0; i < 512; i++ {
		_, in := content[i]
		if b.Get(i) != in {
			t.Errorf("bit %d: got %v, want %v", i, b.Get(i), in)
		}
	}
	if b.Count() != len(content) {
		t.Errorf("Count() = %d, want %d", b.Count(), len(content))
	}
}
