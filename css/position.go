package css

import (
	"fmt"
	"strings"

	"github.com/raitom/teacup/style"
)

// position enumerates the placement schemes of a view.
type position uint16

const (
	positionUnset    position = iota
	positionStatic            // placed by the parent (default)
	positionRelative          // placed by the parent, then shifted by offsets
	positionAbsolute          // placed by offsets within the parent
	positionFixed             // placed by offsets within the window
)

// PositionT is an option type for view positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

// PositionOffset is the offset of a view's edge.
type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

var posDirNames = [...]string{"top", "right", "bottom", "left"}

func (dir PosDir) String() string {
	if dir > Left {
		return "?"
	}
	return posDirNames[dir]
}

// NormalizeOffsets normalizes offsets into a 4-way slice, ordered by PosDir.
// Invalid directions are silently dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := ZeroOffsets()
	for _, o := range offsets {
		if o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

// ZeroOffsets returns (Top, Right, Bottom, Left), all of them unset.
func ZeroOffsets() []PositionOffset {
	zeros := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		zeros[i].Dir = i
	}
	return zeros
}

/*
type PositionT
	= Unset
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
*/

// Static creates a position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a position of value `relative`, given optional offsets.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a position of value `absolute`, given optional offsets.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a position of value `fixed`, given optional offsets.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

var positionNames = map[position]string{
	positionUnset:    "unset",
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
}

// Position returns a position from a property value. Offsets are looked up
// with offset, which may be nil; a view will usually pass its PropertyValue
// method. Unknown position values result in an unset position.
func Position(p style.Property, offset func(key string) style.Property) (PositionT, error) {
	var kind position
	switch strings.ToLower(strings.TrimSpace(p.String())) {
	case "":
		return PositionT{}, nil
	case "static":
		return Static(), nil
	case "relative":
		kind = positionRelative
	case "absolute":
		kind = positionAbsolute
	case "fixed":
		kind = positionFixed
	default:
		return PositionT{}, fmt.Errorf("unknown position: %q", p)
	}
	pos := PositionT{kind: kind, offsets: ZeroOffsets()}
	if offset == nil {
		return pos, nil
	}
	for i := Top; i <= Left; i++ {
		d, err := ParseDimen(offset(i.String()))
		if err != nil {
			return PositionT{}, fmt.Errorf("position offset %s: %w", i, err)
		}
		pos.offsets[i].Dim = d
	}
	return pos, nil
}

// Offsets returns the 4 offsets of p, or nil for unset and static positions.
func (p PositionT) Offsets() []PositionOffset {
	return p.offsets
}

func (p PositionT) String() string {
	if p.offsets == nil {
		return positionNames[p.kind]
	}
	var b strings.Builder
	b.WriteString(positionNames[p.kind])
	for _, o := range p.offsets {
		if !o.Dim.IsUnset() {
			fmt.Fprintf(&b, " %s=%s", o.Dir, o.Dim)
		}
	}
	return b.String()
}

// ---------------------------------------------------------------------------

func (p PositionT) Match() *PMatcher {
	return &PMatcher{pos: p}
}

type PMatcher struct {
	pos PositionT
}

func (m *PMatcher) IsKind(p PositionT) *PMatcher {
	if p.kind == m.pos.kind {
		return m
	}
	return nil
}

func (m *PMatcher) Absolute(o *[]PositionOffset) *PMatcher {
	return m.offsetsFor(positionAbsolute, o)
}

func (m *PMatcher) Relative(o *[]PositionOffset) *PMatcher {
	return m.offsetsFor(positionRelative, o)
}

func (m *PMatcher) Fixed(o *[]PositionOffset) *PMatcher {
	return m.offsetsFor(positionFixed, o)
}

func (m *PMatcher) offsetsFor(kind position, o *[]PositionOffset) *PMatcher {
	if m.pos.kind != kind {
		return nil
	}
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

// --- Expression matching ---------------------------------------------------

type PositionPatterns[T any] struct {
	Unset    T
	Static   T
	Absolute T
	Relative T
	Fixed    T
}

func PositionPattern[T any](p PositionT) *PMatchExpr[T] {
	return &PMatchExpr[T]{pos: p}
}

// PMatchExpr is part of pattern matching for PositionT types and intended to
// be instantiated using PositionPattern only.
type PMatchExpr[T any] struct {
	pos PositionT
}

func (m *PMatchExpr[T]) OneOf(patterns PositionPatterns[T]) T {
	switch m.pos.kind {
	case positionStatic:
		return patterns.Static
	case positionAbsolute:
		return patterns.Absolute
	case positionRelative:
		return patterns.Relative
	case positionFixed:
		return patterns.Fixed
	}
	return patterns.Unset
}

func (m *PMatchExpr[T]) With(o *[]PositionOffset) *PMatchExpr[T] {
	if o != nil {
		*o = m.pos.offsets
	}
	return m
}

func (m *PMatchExpr[T]) Const(x T) T {
	return x
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsStatic returns true if p is static.
func (p PositionT) IsStatic() bool {
	return p.kind == positionStatic
}

// IsRelative returns true if p represents a relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if p represents an absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if p represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}
