package sorting

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/insumos/internal/record"
	"github.com/roach88/insumos/internal/search"
	"github.com/roach88/insumos/internal/testutil"
)

// item carries its input position so stability can be checked.
type item struct {
	key int
	pos int
}

func itemKey(it item) int { return it.key }

func randomItems(rng *rand.Rand, n, keySpace int) []item {
	out := make([]item, n)
	for i := range out {
		out[i] = item{key: rng.IntN(keySpace), pos: i}
	}
	return out
}

func countKeys(items []item) map[item]int {
	m := make(map[item]int, len(items))
	for _, it := range items {
		m[it]++
	}
	return m
}

type sorter struct {
	name string
	sort func([]item) []item
}

func sorters() []sorter {
	return []sorter{
		{"merge", func(in []item) []item { return MergeSort(in, itemKey) }},
		{"quick", func(in []item) []item { return QuickSort(in, itemKey, NewPivotSource(7)) }},
		{"quick first pivot", func(in []item) []item { return QuickSort(in, itemKey, testutil.FirstPivot()) }},
		{"quick last pivot", func(in []item) []item { return QuickSort(in, itemKey, testutil.LastPivot()) }},
	}
}

func TestSort_PermutationAndOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	sizes := []int{0, 1, 2, 3, 10, 63, 200}

	for _, s := range sorters() {
		for _, n := range sizes {
			in := randomItems(rng, n, 8)
			orig := slices.Clone(in)

			got := s.sort(in)

			require.Len(t, got, n, "%s n=%d", s.name, n)
			assert.True(t, IsSorted(got, itemKey), "%s n=%d not sorted", s.name, n)
			assert.Equal(t, countKeys(in), countKeys(got), "%s n=%d lost or duplicated items", s.name, n)
			assert.Equal(t, orig, in, "%s n=%d mutated its input", s.name, n)
		}
	}
}

func TestSort_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	in := randomItems(rng, 50, 5)

	for _, s := range sorters() {
		t.Run(s.name, func(t *testing.T) {
			once := MergeSort(in, itemKey)
			twice := s.sort(once)
			assert.Equal(t, once, twice)
		})
	}
}

func TestSort_EdgeShapes(t *testing.T) {
	n := 40
	ascending := make([]item, n)
	descending := make([]item, n)
	allEqual := make([]item, n)
	for i := 0; i < n; i++ {
		ascending[i] = item{key: i, pos: i}
		descending[i] = item{key: n - i, pos: i}
		allEqual[i] = item{key: 5, pos: i}
	}

	shapes := map[string][]item{
		"ascending":  ascending,
		"descending": descending,
		"all equal":  allEqual,
	}

	for shapeName, in := range shapes {
		for _, s := range sorters() {
			t.Run(shapeName+"/"+s.name, func(t *testing.T) {
				got := s.sort(in)
				require.Len(t, got, n)
				assert.True(t, IsSorted(got, itemKey))
				assert.Equal(t, countKeys(in), countKeys(got))
			})
		}
	}
}

func TestQuickSort_AllEqualNeedsOnePivot(t *testing.T) {
	in := []item{{1, 0}, {1, 1}, {1, 2}, {1, 3}}
	pivots := testutil.FirstPivot()

	got := QuickSort(in, itemKey, pivots)
	assert.Equal(t, in, got)
	assert.Equal(t, 1, pivots.Calls(), "everything lands in the equal partition")
}

func TestQuickSort_SortedInputWithFirstPivotRecursesPerElement(t *testing.T) {
	in := make([]item, 6)
	for i := range in {
		in[i] = item{key: i, pos: i}
	}
	pivots := testutil.FirstPivot()

	got := QuickSort(in, itemKey, pivots)
	assert.Equal(t, in, got)
	assert.Equal(t, 5, pivots.Calls(), "worst case: one pivot per level until length 1")
}

func TestQuickSort_NilPivotSource(t *testing.T) {
	in := []item{{3, 0}, {1, 1}, {2, 2}}
	got := QuickSort(in, itemKey, nil)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].key, got[1].key, got[2].key})
}

func TestMergeSort_Stable(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	in := randomItems(rng, 300, 4)

	got := MergeSort(in, itemKey)
	for i := 1; i < len(got); i++ {
		if got[i].key == got[i-1].key {
			require.Less(t, got[i-1].pos, got[i].pos, "equal keys reordered at %d", i)
		}
	}
}

func TestMergeSort_ReturnsCopyForShortInput(t *testing.T) {
	in := []item{{1, 0}}
	got := MergeSort(in, itemKey)
	got[0].key = 99
	assert.Equal(t, 1, in[0].key)

	assert.Empty(t, MergeSort([]item{}, itemKey))
	assert.Empty(t, QuickSort[item, int](nil, itemKey, nil))
}

func TestSort_RecordsByFarExpiry(t *testing.T) {
	dated := func(name string, year int) record.Record {
		at := time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC)
		return record.MustNew(name, 1, "Curativo", record.ExpiresAt(at))
	}
	records := []record.Record{
		dated("futuro", 2300),
		record.MustNew("sem validade", 1, "Curativo", record.NoExpiry()),
		dated("presente", 2026),
		dated("passado", 1600),
	}
	want := []string{"passado", "presente", "futuro", "sem validade"}

	for _, alg := range Algorithms {
		t.Run(string(alg), func(t *testing.T) {
			got, err := Sort(alg, records, record.ByExpiry, testutil.FirstPivot())
			require.NoError(t, err)

			names := make([]string, len(got))
			for i, r := range got {
				names[i] = r.Name()
			}
			assert.Equal(t, want, names)
		})
	}
}

func TestSort_RecordsByName(t *testing.T) {
	records := []record.Record{
		record.MustNew("X", 5, "E1", record.NoExpiry()),
		record.MustNew("A", 1, "E2", record.NoExpiry()),
		record.MustNew("M", 3, "E1", record.NoExpiry()),
	}

	for _, alg := range Algorithms {
		t.Run(string(alg), func(t *testing.T) {
			got, err := Sort(alg, records, record.ByName, NewPivotSource(1))
			require.NoError(t, err)
			require.Len(t, got, 3)
			assert.Equal(t, "A", got[0].Name())
			assert.Equal(t, "M", got[1].Name())
			assert.Equal(t, "X", got[2].Name())

			found, ok := search.Binary(got, "m")
			require.True(t, ok)
			assert.Equal(t, records[2], found)
		})
	}
}

func TestSort_RecordsByNameIgnoresCase(t *testing.T) {
	records := []record.Record{
		record.MustNew("seringa 5ml", 1, "PCR", record.NoExpiry()),
		record.MustNew("Agulha 25x7", 2, "PCR", record.NoExpiry()),
		record.MustNew("luva nitrílica M", 3, "PCR", record.NoExpiry()),
	}

	got := MergeSort(records, record.ByName)
	assert.Equal(t, "Agulha 25x7", got[0].Name())
	assert.Equal(t, "luva nitrílica M", got[1].Name())
	assert.Equal(t, "seringa 5ml", got[2].Name())
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm(" Merge ")
	require.NoError(t, err)
	assert.Equal(t, Merge, alg)
	assert.True(t, alg.Stable())

	alg, err = ParseAlgorithm("quick")
	require.NoError(t, err)
	assert.Equal(t, Quick, alg)
	assert.False(t, alg.Stable())

	_, err = ParseAlgorithm("bubble")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bubble")
}

func TestSort_UnknownAlgorithm(t *testing.T) {
	_, err := Sort(Algorithm("heap"), []item{{1, 0}}, itemKey, nil)
	require.Error(t, err)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted([]item{}, itemKey))
	assert.True(t, IsSorted([]item{{1, 0}, {1, 1}, {2, 2}}, itemKey))
	assert.False(t, IsSorted([]item{{2, 0}, {1, 1}}, itemKey))
}
