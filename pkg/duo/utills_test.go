package duo

import "testing"

func TestIsNil_NilKinds(t *testing.T) {
	t.Parallel()

	if !IsNil(nil) {
		t.Fatal("expected true for untyped nil")
	}

	var p *int
	if !IsNil(p) {
		t.Fatal("expected true for nil pointer")
	}
	var m map[string]int
	if !IsNil(m) {
		t.Fatal("expected true for nil map")
	}
	var s []int
	if !IsNil(s) {
		t.Fatal("expected true for nil slice")
	}
	var fn func()
	if !IsNil(fn) {
		t.Fatal("expected true for nil func")
	}
	var ch chan int
	if !IsNil(ch) {
		t.Fatal("expected true for nil chan")
	}
}

func TestIsNil_NonNilValues(t *testing.T) {
	t.Parallel()

	if IsNil(0) || IsNil("") || IsNil(struct{}{}) {
		t.Fatal("expected false for non-nil-able kinds")
	}

	v := 1
	if IsNil(&v) {
		t.Fatal("expected false for live pointer")
	}
	if IsNil(map[string]int{}) || IsNil([]int{}) {
		t.Fatal("expected false for allocated map and slice")
	}
}
