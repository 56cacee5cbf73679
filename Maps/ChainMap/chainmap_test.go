package ChainMap

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	Go_Containers "github.com/j-k-maldonado/go-containers"
	"github.com/j-k-maldonado/go-containers/Maps"
	"github.com/stretchr/testify/require"
)

var _ Maps.Map[string, string] = (*ChainMap[string, string])(nil)

func newStrs(t *testing.T, options ...option[string, string]) *ChainMap[string, string] {
	t.Helper()
	m, err := NewStrings[string](options...)
	require.NoError(t, err)
	return m
}

// checkInvariants walks every bucket verifying residency and size
// accounting.
func (u *ChainMap[K, V]) checkInvariants(t *testing.T) {
	t.Helper()
	n := 0
	for i, e := range u.buckets {
		for ; e != nil; e = e.next {
			n++
			require.EqualValues(t, i, u.hash(e.Key)%uint32(len(u.buckets)))
		}
	}
	require.Equal(t, u.size, n)
}

func TestChainMap_Basic(t *testing.T) {
	m := newStrs(t)
	require.Equal(t, DefaultBuckets, m.Buckets())
	require.True(t, m.Empty())

	require.NoError(t, m.Put("alpha", "1"))
	require.NoError(t, m.Put("beta", "2"))
	require.NoError(t, m.Put("gamma", "3"))
	require.Equal(t, 3, m.Size())

	v, ok := m.Get("beta")
	require.True(t, ok)
	require.Equal(t, "2", v)
	require.False(t, m.HasKey("delta"))
	m.checkInvariants(t)
}

func TestChainMap_CapacityClamp(t *testing.T) {
	m := newStrs(t, WithCapacity[string, string](2))
	require.Equal(t, MinBuckets, m.Buckets())

	m = newStrs(t, WithCapacity[string, string](11))
	require.Equal(t, 11, m.Buckets())
}

func TestChainMap_ZeroValueVsAbsent(t *testing.T) {
	m := newStrs(t)
	require.NoError(t, m.Put("a", ""))

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, "", v)
	require.NotNil(t, m.GetEntry("a"))

	_, ok = m.Get("b")
	require.False(t, ok)
	require.Nil(t, m.GetEntry("b"))
}

func TestChainMap_Update(t *testing.T) {
	valDtor := 0
	m := newStrs(t, WithDestroyValue[string, string](func(string) { valDtor++ }))

	require.NoError(t, m.Put("k", "v1"))
	require.Equal(t, 0, valDtor)
	require.NoError(t, m.Put("k", "v2"))
	require.Equal(t, 1, valDtor)
	require.Equal(t, 1, m.Size())

	v, ok := m.Get("k")
	require.True(t, ok)
	require.Equal(t, "v2", v)
}

// An updating Put keeps the key already stored and releases the incoming
// duplicate. Pointer keys with value equality make the two distinguishable.
func TestChainMap_UpdateKeepsStoredKey(t *testing.T) {
	hash := func(k *int) uint32 { return Go_Containers.HashInt(*k) }
	eq := func(a, b *int) bool { return *a == *b }

	var dropped []*int
	m, err := New[*int, string](hash, eq,
		WithDestroyKey[*int, string](func(k *int) { dropped = append(dropped, k) }))
	require.NoError(t, err)

	k1, k2 := new(int), new(int)
	*k1, *k2 = 7, 7
	require.NoError(t, m.Put(k1, "first"))
	require.NoError(t, m.Put(k2, "second"))

	require.Equal(t, 1, m.Size())
	e := m.GetEntry(k1)
	require.NotNil(t, e)
	require.Same(t, k1, e.Key)
	require.Equal(t, "second", e.Value)
	require.Equal(t, []*int{k2}, dropped)
}

func TestChainMap_Detach(t *testing.T) {
	keyDtor, valDtor := 0, 0
	m := newStrs(t,
		WithDestroyKey[string, string](func(string) { keyDtor++ }),
		WithDestroyValue[string, string](func(string) { valDtor++ }))
	require.NoError(t, m.Put("alpha", "1"))
	require.NoError(t, m.Put("beta", "2"))
	require.NoError(t, m.Put("gamma", "3"))

	e, ok := m.Detach("beta")
	require.True(t, ok)
	require.Equal(t, "beta", e.Key)
	require.Equal(t, "2", e.Value)
	require.Equal(t, 2, m.Size())
	require.Zero(t, keyDtor)
	require.Zero(t, valDtor)
	require.False(t, m.HasKey("beta"))

	_, ok = m.Detach("beta")
	require.False(t, ok)
	m.checkInvariants(t)
}

func TestChainMap_Remove(t *testing.T) {
	keyDtor, valDtor := 0, 0
	m := newStrs(t,
		WithDestroyKey[string, string](func(string) { keyDtor++ }),
		WithDestroyValue[string, string](func(string) { valDtor++ }))
	require.NoError(t, m.Put("a", "1"))
	require.NoError(t, m.Put("b", "2"))

	require.True(t, m.Remove("a"))
	require.Equal(t, 1, keyDtor)
	require.Equal(t, 1, valDtor)
	require.Equal(t, 1, m.Size())
	require.False(t, m.HasKey("a"))

	require.False(t, m.Remove("a"))
	require.Equal(t, 1, keyDtor)
	m.checkInvariants(t)
}

func TestChainMap_ResizePreserves(t *testing.T) {
	dtor := 0
	m := newStrs(t,
		WithCapacity[string, string](8),
		WithLoadFactor[string, string](1.0),
		WithDestroyKey[string, string](func(string) { dtor++ }),
		WithDestroyValue[string, string](func(string) { dtor++ }))
	for i := 0; i < 8; i++ {
		require.NoError(t, m.Put("key"+strconv.Itoa(i), "value"+strconv.Itoa(i)))
	}
	require.Equal(t, 8, m.Size())
	require.Equal(t, 8, m.Buckets())

	require.NoError(t, m.Resize(32))
	require.Equal(t, 32, m.Buckets())
	require.Equal(t, 8, m.Size())
	require.Zero(t, dtor)
	for i := 0; i < 8; i++ {
		v, ok := m.Get("key" + strconv.Itoa(i))
		require.True(t, ok)
		require.Equal(t, "value"+strconv.Itoa(i), v)
	}
	m.checkInvariants(t)

	// Shrink requests below the floor are raised to it.
	require.NoError(t, m.Resize(1))
	require.Equal(t, MinBuckets, m.Buckets())
	require.Equal(t, 8, m.Size())
	m.checkInvariants(t)
}

func TestChainMap_AutoGrow(t *testing.T) {
	m := newStrs(t, WithCapacity[string, string](8))
	for i := 0; i < 7; i++ {
		require.NoError(t, m.Put("key"+strconv.Itoa(i), "value"+strconv.Itoa(i)))
	}
	require.GreaterOrEqual(t, m.Buckets(), 16)
	require.LessOrEqual(t, m.LoadFactor(), DefaultLoadFactor)
	for i := 0; i < 7; i++ {
		require.True(t, m.HasKey("key"+strconv.Itoa(i)))
	}
	m.checkInvariants(t)
}

func TestChainMap_SetLoadFactorClamp(t *testing.T) {
	m := newStrs(t)
	require.Equal(t, DefaultLoadFactor, m.loadFactor)

	m.SetLoadFactor(-1)
	require.Equal(t, DefaultLoadFactor, m.loadFactor)
	m.SetLoadFactor(0)
	require.Equal(t, DefaultLoadFactor, m.loadFactor)
	m.SetLoadFactor(1.5)
	require.Equal(t, MaxLoadFactor, m.loadFactor)
	m.SetLoadFactor(0.5)
	require.Equal(t, 0.5, m.loadFactor)

	// Lowering the ceiling below the current ratio must not resize.
	for i := 0; i < 6; i++ {
		require.NoError(t, m.Put(strconv.Itoa(i), "")) // 6/16
	}
	before := m.Buckets()
	m.SetLoadFactor(0.25)
	require.Equal(t, before, m.Buckets())
}

func TestChainMap_ClearReuse(t *testing.T) {
	dtor := 0
	m := newStrs(t,
		WithCapacity[string, string](8),
		WithDestroyKey[string, string](func(string) { dtor++ }),
		WithDestroyValue[string, string](func(string) { dtor++ }))
	for i := 0; i < 4; i++ {
		require.NoError(t, m.Put(strconv.Itoa(i), "x"))
	}
	buckets := m.Buckets()

	m.Clear()
	require.Zero(t, m.Size())
	require.Equal(t, buckets, m.Buckets())
	require.Equal(t, 8, dtor)
	m.Clear() // idempotent
	require.Equal(t, 8, dtor)

	require.NoError(t, m.Put("k", "v"))
	v, ok := m.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)
	require.Equal(t, 1, m.Size())
}

func TestChainMap_Destroy(t *testing.T) {
	dtor := 0
	m := newStrs(t, WithDestroyKey[string, string](func(string) { dtor++ }))
	require.NoError(t, m.Put("a", "1"))
	require.NoError(t, m.Put("b", "2"))

	m.Destroy()
	require.Equal(t, 2, dtor)
	require.Nil(t, m.buckets)
	m.Destroy() // idempotent on the zeroed map
	require.Equal(t, 2, dtor)
}

// Property: with both finalizers installed, total invocations equal
// 2*(removes without detach) + 2*cleared + 2*destroyed + value-updates +
// key-updates; detached entries contribute nothing.
func TestChainMap_DestructorAccounting(t *testing.T) {
	keyDtor, valDtor := 0, 0
	m := newStrs(t,
		WithDestroyKey[string, string](func(string) { keyDtor++ }),
		WithDestroyValue[string, string](func(string) { valDtor++ }))

	for i := 0; i < 10; i++ {
		require.NoError(t, m.Put(strconv.Itoa(i), "v"))
	}
	require.NoError(t, m.Put("3", "updated")) // +1 key (incoming), +1 value (displaced)
	require.True(t, m.Remove("0"))            // +1 key, +1 value
	_, ok := m.Detach("1")                    // +0
	require.True(t, ok)

	require.Equal(t, 2, keyDtor)
	require.Equal(t, 2, valDtor)

	m.Destroy() // 8 entries remain
	require.Equal(t, 10, keyDtor)
	require.Equal(t, 10, valDtor)
}

func TestChainMap_RangeStops(t *testing.T) {
	m := newStrs(t)
	for i := 0; i < 10; i++ {
		require.NoError(t, m.Put(strconv.Itoa(i), ""))
	}
	seen := 0
	m.Range(func(string, string) bool {
		seen++
		return seen < 3
	})
	require.Equal(t, 3, seen)
}

func TestChainMap_IntKeys(t *testing.T) {
	m, err := New[int, int](Go_Containers.HashInt, Go_Containers.Equal[int])
	require.NoError(t, err)
	for i := -50; i < 50; i++ {
		require.NoError(t, m.Put(i, i*i))
	}
	require.Equal(t, 100, m.Size())
	v, ok := m.Get(-7)
	require.True(t, ok)
	require.Equal(t, 49, v)
	m.checkInvariants(t)
}

// countingAlloc records the alloc/free traffic and can be told to start
// refusing either kind of request.
type countingAlloc[K, V any] struct {
	entries, freedEntries int
	arrays, freedArrays   int
	failEntries           bool
	failArrays            bool
}

var errNoMemory = errors.New("no memory")

func (a *countingAlloc[K, V]) AllocBuckets(n int) ([]*Entry[K, V], error) {
	if a.failArrays {
		return nil, errNoMemory
	}
	a.arrays++
	return make([]*Entry[K, V], n), nil
}

func (a *countingAlloc[K, V]) AllocEntry() (*Entry[K, V], error) {
	if a.failEntries {
		return nil, errNoMemory
	}
	a.entries++
	return new(Entry[K, V]), nil
}

func (a *countingAlloc[K, V]) FreeBuckets([]*Entry[K, V]) {
	a.freedArrays++
}

func (a *countingAlloc[K, V]) FreeEntry(*Entry[K, V]) {
	a.freedEntries++
}

func TestChainMap_NewAllocFailure(t *testing.T) {
	alloc := &countingAlloc[string, string]{failArrays: true}
	_, err := NewStrings[string](WithAllocator[string, string](alloc))
	var ae *AllocationError
	require.ErrorAs(t, err, &ae)
	require.ErrorIs(t, err, errNoMemory)
}

func TestChainMap_PutAllocFailure(t *testing.T) {
	alloc := &countingAlloc[string, string]{}
	m, err := NewStrings[string](WithAllocator[string, string](alloc))
	require.NoError(t, err)
	require.NoError(t, m.Put("a", "1"))

	alloc.failEntries = true
	err = m.Put("b", "2")
	var ae *AllocationError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, 1, m.Size())
	require.False(t, m.HasKey("b"))

	// Updating an existing key needs no node and still succeeds.
	require.NoError(t, m.Put("a", "updated"))
	m.checkInvariants(t)
}

func TestChainMap_ResizeAllocFailure(t *testing.T) {
	alloc := &countingAlloc[string, string]{}
	m, err := NewStrings[string](WithAllocator[string, string](alloc), WithCapacity[string, string](8))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, m.Put(strconv.Itoa(i), "v"))
	}

	alloc.failArrays = true
	require.Error(t, m.Resize(64))
	require.Equal(t, 8, m.Buckets())
	require.Equal(t, 5, m.Size())
	for i := 0; i < 5; i++ {
		require.True(t, m.HasKey(strconv.Itoa(i)))
	}
	m.checkInvariants(t)
}

// A Put whose follow-up doubling fails keeps the new entry and reports
// success; the map sits above its ceiling until a later growth succeeds.
func TestChainMap_GrowFailureTolerated(t *testing.T) {
	alloc := &countingAlloc[string, string]{}
	m, err := NewStrings[string](WithAllocator[string, string](alloc), WithCapacity[string, string](8))
	require.NoError(t, err)

	alloc.failArrays = true
	for i := 0; i < 7; i++ {
		require.NoError(t, m.Put("key"+strconv.Itoa(i), "value"+strconv.Itoa(i)))
	}
	require.Equal(t, 8, m.Buckets())
	require.Equal(t, 7, m.Size())
	require.Greater(t, m.LoadFactor(), DefaultLoadFactor)
	for i := 0; i < 7; i++ {
		require.True(t, m.HasKey("key"+strconv.Itoa(i)))
	}
	m.checkInvariants(t)

	// Once the allocator recovers, the next insert grows past the backlog.
	alloc.failArrays = false
	require.NoError(t, m.Put("late", "v"))
	require.Equal(t, 16, m.Buckets())
	require.LessOrEqual(t, m.LoadFactor(), DefaultLoadFactor)
	m.checkInvariants(t)
}

func TestChainMap_AllocAccounting(t *testing.T) {
	alloc := &countingAlloc[string, string]{}
	m, err := NewStrings[string](WithAllocator[string, string](alloc))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.NoError(t, m.Put(strconv.Itoa(i), "v"))
	}
	require.True(t, m.Remove("0"))
	_, ok := m.Detach("1")
	require.True(t, ok)
	m.Destroy()

	// Every allocated node was freed except the detached one, and every
	// bucket array (initial + growths) was returned.
	require.Equal(t, alloc.entries-1, alloc.freedEntries)
	require.Equal(t, alloc.arrays, alloc.freedArrays)
}

func TestChainMap_Random(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	m := newStrs(t, WithCapacity[string, string](8))
	content := make(map[string]string)

	for i := 0; i < 20000; i++ {
		k := strconv.Itoa(rg.Intn(500))
		switch rg.Intn(3) {
		case 0, 1:
			v := strconv.Itoa(rg.Int())
			require.NoError(t, m.Put(k, v))
			content[k] = v
		case 2:
			_, in := content[k]
			require.Equal(t, in, m.Remove(k))
			delete(content, k)
		}
		if v, in := content[k]; in {
			got, ok := m.Get(k)
			require.True(t, ok)
			require.Equal(t, v, got)
		} else {
			require.False(t, m.HasKey(k))
		}
	}

	require.Equal(t, len(content), m.Size())
	m.checkInvariants(t)
	m.Range(func(k, v string) bool {
		require.Equal(t, content[k], v)
		return true
	})
}
