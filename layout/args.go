package layout

import (
	"fmt"

	"github.com/raitom/teacup/style"
)

// argsShape enumerates the ways style information may be handed to Layout.
type argsShape uint8

const (
	shapeNeither argsShape = iota
	shapeName
	shapeProperties
	shapeNameAndProperties
)

/*
type Args
	= Neither
	| NameOnly stylename
	| PropertiesOnly properties
	| NameAndProperties stylename properties
*/

// Args is the style information for a node: a stylename, explicit
// properties, both or neither.
type Args struct {
	name  string
	props *style.PropertyMap
	shape argsShape
}

// NoArgs configures neither a stylename nor properties.
func NoArgs() Args {
	return Args{}
}

// Name configures a stylename only.
func Name(stylename string) Args {
	return Args{name: stylename, shape: shapeName}
}

// Props configures explicit properties only. Props(nil) is NoArgs().
func Props(props *style.PropertyMap) Args {
	if props == nil {
		return NoArgs()
	}
	return Args{props: props, shape: shapeProperties}
}

// NameAndProps configures a stylename together with explicit properties,
// which override whatever the stylename resolves to.
func NameAndProps(stylename string, props *style.PropertyMap) Args {
	if props == nil {
		return Name(stylename)
	}
	return Args{name: stylename, props: props, shape: shapeNameAndProperties}
}

// P is a shorthand for writing down explicit properties, e.g.
//
//    layout.P{"width": 100, "text": "Hello"}
type P map[string]any

// Map converts p to a property map.
func (p P) Map() *style.PropertyMap {
	return style.PropertiesFrom(p)
}

// ParseArgs normalizes the loosely typed call shapes of a layout call
// (as found in configuration-driven or scripted construction) into Args:
//
//    ParseArgs()                      => NoArgs()
//    ParseArgs("card")                => Name("card")
//    ParseArgs(P{"width": 100})       => Props(…)
//    ParseArgs("card", P{"width": 1}) => NameAndProps("card", …)
//
// If a second argument is present, the first one is the stylename and the
// second one the properties. Otherwise a single argument is the properties
// if it is a map, and the stylename if it is a string.
// Properties may be given as P, map[string]any, map[string]string,
// style.PropertyMap or *style.PropertyMap.
//
// More than two arguments, or arguments of other types, are rejected with
// ErrInvalidArguments.
func ParseArgs(args ...any) (Args, error) {
	switch len(args) {
	case 0:
		return NoArgs(), nil
	case 1:
		if props, ok := asProperties(args[0]); ok {
			return Props(props), nil
		}
		if name, ok := args[0].(string); ok {
			return Name(name), nil
		}
		return NoArgs(), fmt.Errorf("%w: expected stylename or properties, have %T", ErrInvalidArguments, args[0])
	case 2:
		name, ok := args[0].(string)
		if !ok {
			return NoArgs(), fmt.Errorf("%w: expected stylename as first of two arguments, have %T",
				ErrInvalidArguments, args[0])
		}
		props, ok := asProperties(args[1])
		if !ok {
			return NoArgs(), fmt.Errorf("%w: expected properties as second of two arguments, have %T",
				ErrInvalidArguments, args[1])
		}
		return NameAndProps(name, props), nil
	}
	return NoArgs(), fmt.Errorf("%w: at most 2 arguments supported, have %d", ErrInvalidArguments, len(args))
}

func asProperties(arg any) (*style.PropertyMap, bool) {
	switch p := arg.(type) {
	case *style.PropertyMap:
		return p, p != nil
	case style.PropertyMap:
		return &p, true
	case P:
		return p.Map(), true
	case map[string]any:
		return style.PropertiesFrom(p), true
	case map[string]string:
		pmap := style.NewPropertyMap()
		for k, v := range p {
			pmap.Set(k, style.Property(v))
		}
		return pmap, true
	}
	return nil, false
}

// Stylename returns the stylename, if one is configured.
func (a Args) Stylename() (string, bool) {
	return a.name, a.shape == shapeName || a.shape == shapeNameAndProperties
}

// Properties returns the explicit properties, if any are configured.
func (a Args) Properties() (*style.PropertyMap, bool) {
	return a.props, a.shape == shapeProperties || a.shape == shapeNameAndProperties
}

func (a Args) String() string {
	return ArgsPattern[string](a).OneOf(ArgsPatterns[string]{
		Neither:           "()",
		NameOnly:          fmt.Sprintf("(%s)", a.name),
		PropertiesOnly:    fmt.Sprintf("(%s)", a.props),
		NameAndProperties: fmt.Sprintf("(%s, %s)", a.name, a.props),
	})
}

// --- Matching --------------------------------------------------------------

// Match starts pattern matching on the shape of a. Use it in a switch:
//
//    var name string
//    var props *style.PropertyMap
//    switch m := args.Match(); m {
//    case m.NameOnly(&name):
//    case m.PropertiesOnly(&props):
//    case m.NameAndProperties(&name, &props):
//    case m.Neither():
//    }
func (a Args) Match() *ArgsMatcher {
	return &ArgsMatcher{args: a}
}

// ArgsMatcher is the matcher for Args. Each method returns the matcher on a
// match, nil otherwise.
type ArgsMatcher struct {
	args Args
}

func (m *ArgsMatcher) Neither() *ArgsMatcher {
	if m.args.shape == shapeNeither {
		return m
	}
	return nil
}

func (m *ArgsMatcher) NameOnly(name *string) *ArgsMatcher {
	if m.args.shape == shapeName {
		if name != nil {
			*name = m.args.name
		}
		return m
	}
	return nil
}

func (m *ArgsMatcher) PropertiesOnly(props **style.PropertyMap) *ArgsMatcher {
	if m.args.shape == shapeProperties {
		if props != nil {
			*props = m.args.props
		}
		return m
	}
	return nil
}

func (m *ArgsMatcher) NameAndProperties(name *string, props **style.PropertyMap) *ArgsMatcher {
	if m.args.shape == shapeNameAndProperties {
		if name != nil {
			*name = m.args.name
		}
		if props != nil {
			*props = m.args.props
		}
		return m
	}
	return nil
}

// ArgsPatterns holds a result for every shape of Args.
type ArgsPatterns[T any] struct {
	Neither           T
	NameOnly          T
	PropertiesOnly    T
	NameAndProperties T
}

// ArgsPattern starts an expression match on a.
func ArgsPattern[T any](a Args) *ArgsMatchExpr[T] {
	return &ArgsMatchExpr[T]{args: a}
}

// ArgsMatchExpr is part of expression matching for Args and intended to be
// instantiated using ArgsPattern only.
type ArgsMatchExpr[T any] struct {
	args Args
}

// OneOf selects the pattern for the shape of the args.
func (m *ArgsMatchExpr[T]) OneOf(patterns ArgsPatterns[T]) T {
	switch m.args.shape {
	case shapeName:
		return patterns.NameOnly
	case shapeProperties:
		return patterns.PropertiesOnly
	case shapeNameAndProperties:
		return patterns.NameAndProperties
	}
	return patterns.Neither
}
