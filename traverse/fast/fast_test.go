package fast_test

import (
	"reflect"
	"testing"

	"github.com/lguimbarda/lockstep/traverse/fast"
)

func TestMap2(t *testing.T) {
	got := fast.Map2([]int{1, 2}, []int{3, 4}, func(a, b int) int { return a * b })
	if !reflect.DeepEqual(got, []int{3, 8}) {
		t.Errorf("Map2() = %v, want [3 8]", got)
	}
}

func TestMap2StopsAtShortest(t *testing.T) {
	got := fast.Map2([]int{1, 2, 3}, []string{"x"}, func(a int, b string) string { return b })
	if len(got) != 1 {
		t.Errorf("len(Map2()) = %d, want 1", len(got))
	}
}

func TestMap3(t *testing.T) {
	got := fast.Map3([]int{1, 2}, []int{3, 4}, []int{5, 6}, func(a, b, c int) int {
		return a + b + c
	})
	if !reflect.DeepEqual(got, []int{9, 12}) {
		t.Errorf("Map3() = %v, want [9 12]", got)
	}
}

func TestReduce2(t *testing.T) {
	got := fast.Reduce2([]int{1, 2}, []int{3, 4}, 0, func(a, b, acc int) int {
		return a*b + acc
	})
	if got != 11 {
		t.Errorf("Reduce2() = %d, want 11", got)
	}
}

func TestEach3(t *testing.T) {
	var sums []int
	fast.Each3([]int{1, 2}, []int{10, 20}, []int{100, 200}, func(a, b, c int) {
		sums = append(sums, a+b+c)
	})
	if !reflect.DeepEqual(sums, []int{111, 222}) {
		t.Errorf("sums = %v, want [111 222]", sums)
	}
}

func TestZip2(t *testing.T) {
	got := fast.Zip2([]int{1, 2}, []string{"a", "b"})
	want := []fast.Tuple2[int, string]{{A: 1, B: "a"}, {A: 2, B: "b"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Zip2() = %v, want %v", got, want)
	}
}

func TestZip3(t *testing.T) {
	got := fast.Zip3([]int{1, 2}, []int{3, 4}, []int{5, 6})
	want := []fast.Tuple3[int, int, int]{{A: 1, B: 3, C: 5}, {A: 2, B: 4, C: 6}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Zip3() = %v, want %v", got, want)
	}
}

func TestZipUnzipRoundTrip(t *testing.T) {
	as := []int{1, 2, 3}
	bs := []string{"a", "b", "c"}

	gotA, gotB := fast.Unzip2(fast.Zip2(as, bs))
	if !reflect.DeepEqual(gotA, as) || !reflect.DeepEqual(gotB, bs) {
		t.Errorf("round trip = (%v, %v), want (%v, %v)", gotA, gotB, as, bs)
	}
}

func TestUnzip4(t *testing.T) {
	ts := []fast.Tuple4[int, int, int, int]{
		{A: 1, B: 2, C: 3, D: 4},
		{A: 5, B: 6, C: 7, D: 8},
	}
	as, bs, cs, ds := fast.Unzip4(ts)
	if !reflect.DeepEqual(as, []int{1, 5}) || !reflect.DeepEqual(bs, []int{2, 6}) ||
		!reflect.DeepEqual(cs, []int{3, 7}) || !reflect.DeepEqual(ds, []int{4, 8}) {
		t.Errorf("Unzip4() = (%v, %v, %v, %v)", as, bs, cs, ds)
	}
}

func TestTupleUnpack(t *testing.T) {
	a, b, c := fast.Unpack3(fast.T3(1, "x", true))
	if a != 1 || b != "x" || c != true {
		t.Errorf("Unpack3() = (%v, %v, %v), want (1, x, true)", a, b, c)
	}
}
