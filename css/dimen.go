/*
Package css converts textual dimension properties of views into option
types.

Views receive geometry as plain property values, e.g.

    width: 100        // points
    height: 2.5cm
    left: 50%
    top: auto

ParseDimen turns these into DimenT values, which clients then inspect by
pattern matching.
*/
package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/raitom/teacup/style"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for view dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

/*
type DimenT
	= Unset
	| Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage Percent
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

var units = map[string]dimen.DU{
	"":   dimen.PT, // views measure in points by default
	"pt": dimen.PT,
	"bp": dimen.BP,
	"mm": dimen.MM,
	"cm": dimen.CM,
	"in": dimen.IN,
}

// ParseDimen parses a dimension property. The null style results in an unset
// dimension. Plain numbers are points.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.ToLower(strings.TrimSpace(p.String()))
	switch s {
	case "":
		return DimenT{}, nil
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	}
	if strings.HasSuffix(s, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "%")))
		if err != nil {
			return DimenT{}, fmt.Errorf("illegal percentage: %q", p)
		}
		return Percentage(percent.FromInt(n)), nil
	}
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	num, unit := s, ""
	if i >= 0 {
		num, unit = strings.TrimSpace(s[:i]), s[i:]
	}
	scale, ok := units[unit]
	if !ok {
		return DimenT{}, fmt.Errorf("illegal unit in dimension: %q", p)
	}
	x, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("illegal dimension: %q", p)
	}
	return JustDimen(dimen.DU(x * float64(scale))), nil
}

// IsUnset returns true if d has not been set.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenNone
}

// IsAuto returns true if d is `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags&kindMask == dimenAuto
}

// IsAbsolute returns true if d is a fixed value.
func (d DimenT) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsPercent returns true if d is a percentage.
func (d DimenT) IsPercent() bool {
	return d.flags&relativeMask == dimenPercent
}

func (d DimenT) String() string {
	switch {
	case d.IsUnset():
		return "unset"
	case d.IsAuto():
		return "auto"
	case d.flags&kindMask == dimenInherit:
		return "inherit"
	case d.flags&kindMask == dimenInitial:
		return "initial"
	case d.IsPercent():
		return fmt.Sprintf("%v", d.percent)
	}
	return fmt.Sprintf("%v", d.d)
}

// ---------------------------------------------------------------------------

func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

type Matcher struct {
	dimen DimenT
}

func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags&kindMask) && (m.dimen.flags&relativeMask) == (d.flags&relativeMask):
		return m
	}
	return nil
}

func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.IsAbsolute() {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

func (m *Matcher) Percentage(p *percent.Percent) *Matcher {
	if m.dimen.IsPercent() {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type DimenPatterns[T any] struct {
	Unset   T
	Auto    T
	Inherit T
	Initial T
	Just    T
	Percent T
	Default T
}

func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

type MatchExpr[T any] struct {
	dimen DimenT
}

func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.IsUnset():
		return patterns.Unset
	case m.dimen.IsAuto():
		return patterns.Auto
	case m.dimen.IsAbsolute():
		return patterns.Just
	case m.dimen.IsPercent():
		return patterns.Percent
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
