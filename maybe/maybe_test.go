package maybe_test

import (
	"testing"

	. "github.com/raitom/teacup/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

// Matching must not depend on the wrapped type being comparable.
func TestMaybeNonComparable(t *testing.T) {
	x := Just([]string{"a", "b"})
	var v []string
	matched := false
	switch m := x.Match(); m {
	case m.Just(&v):
		matched = true
	case m.Nothing():
	}
	if !matched || len(v) != 2 {
		t.Errorf("expected Just([a b]) to match, have %v", v)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeGetAndOf(t *testing.T) {
	if v, ok := Of("x", true).Get(); !ok || v != "x" {
		t.Errorf("expected Of(x, true) to be Just x, is %v/%v", v, ok)
	}
	if !Of("x", false).IsNothing() {
		t.Error("expected Of(x, false) to be Nothing")
	}
}

func TestMaybeMap(t *testing.T) {
	xx := Just(7).Map(func(n int) int {
		return n * 2
	})
	if v, _ := xx.Get(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	yy := Nothing[int]().Map(func(n int) int {
		return n * 2
	})
	if !yy.IsNothing() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	var isGreater bool
	switch m := AndThen(gt0, Just(7)).Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing")
	}
}
