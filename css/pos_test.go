package css_test

import (
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/raitom/teacup/css"
	"github.com/raitom/teacup/style"
)

func TestPositionBasic(t *testing.T) {
	a := css.Absolute(nil)
	var o []css.PositionOffset
	switch m := a.Match(); m {
	case m.Absolute(&o):
		t.Logf("offsets = %v", o)
	default:
		t.Errorf("expected Absolute() to be an absolute position, isn't: %#v", a)
	}
	if len(o) != 4 {
		t.Errorf("expected 4 normalized offsets, have %d", len(o))
	}

	static := css.Static()
	switch m := static.Match(); m {
	case m.IsKind(css.Static()):
		t.Logf("position is static")
	default:
		t.Errorf("expected position to match kind(static), isn't: %#v", static)
	}
	if !css.Absolute(nil).IsAbsolute() || css.Static().IsAbsolute() {
		t.Errorf("IsAbsolute confuses position kinds")
	}
}

func TestPositionPattern(t *testing.T) {
	o := []css.PositionOffset{
		{Dim: css.JustDimen(10 * dimen.PT), Dir: css.Bottom},
	}
	f := css.Fixed(o)
	m := css.PositionPattern[int](f)
	out := m.OneOf(css.PositionPatterns[int]{
		Unset: 10,
		Fixed: 99,
	})
	if out != 99 {
		t.Errorf("expected out to be 99, isn't: %#v", out)
	}

	e := css.PositionPattern[[]css.PositionOffset](f)
	off := e.OneOf(css.PositionPatterns[[]css.PositionOffset]{
		Fixed:    e.With(&o).Const(o),
		Relative: css.ZeroOffsets(),
	})
	if len(off) != 4 {
		t.Fatalf("expected 4 offsets, aren't: %#v", off)
	}
	if off[css.Bottom].Dim.IsUnset() || !off[css.Top].Dim.IsUnset() {
		t.Errorf("expected only bottom offset to be set, have %v", off)
	}
}

func TestPositionFromProperties(t *testing.T) {
	props := map[string]style.Property{"top": "10", "left": "50%"}
	lookup := func(key string) style.Property { return props[key] }
	pos, err := css.Position("Absolute", lookup)
	if err != nil {
		t.Fatal(err)
	}
	x := css.PositionPattern[string](pos).OneOf(css.PositionPatterns[string]{
		Unset:    "NONE",
		Absolute: "ABSOLUTE",
	})
	if x != "ABSOLUTE" {
		t.Errorf("expected ABSOLUTE, have %v", x)
	}
	offsets := pos.Offsets()
	if !offsets[css.Top].Dim.IsAbsolute() || !offsets[css.Left].Dim.IsPercent() {
		t.Errorf("offsets not parsed: %v", pos)
	}
	if !offsets[css.Right].Dim.IsUnset() {
		t.Errorf("expected right offset to be unset, have %v", offsets[css.Right].Dim)
	}
	if pos, _ = css.Position("", lookup); !pos.IsUnset() {
		t.Errorf("expected empty property to be unset position, have %v", pos)
	}
	if _, err = css.Position("sticky", nil); err == nil {
		t.Errorf("expected error for unknown position")
	}
	if _, err = css.Position("relative", func(string) style.Property { return "10furlong" }); err == nil {
		t.Errorf("expected error for illegal offset")
	}
}

func TestDisplayParse(t *testing.T) {
	for _, x := range []struct {
		in     string
		hidden bool
		block  bool
		inner  css.DisplayMode
	}{
		{"none", true, false, css.NoMode},
		{"block", false, true, css.InnerBlockMode},
		{"Flex", false, true, css.FlexMode},
		{"inline", false, false, css.InnerInlineMode},
	} {
		d, err := css.ParseDisplay(x.in)
		if err != nil {
			t.Fatalf("%s: %v", x.in, err)
		}
		if d.IsHidden() != x.hidden || d.IsBlockLevel() != x.block || d.Inner() != x.inner {
			t.Errorf("%s: unexpected display mode %s", x.in, d.FullString())
		}
	}
	if _, err := css.ParseDisplay("table-cell"); err == nil {
		t.Errorf("expected error for unknown display mode")
	}
	if d, _ := css.ParseDisplay(""); d != css.NoMode {
		t.Errorf("expected NoMode for empty display")
	}
}
