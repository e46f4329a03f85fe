package view

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/raitom/teacup/css"
	"github.com/raitom/teacup/layout"
	"github.com/raitom/teacup/style"
	"github.com/raitom/teacup/tree"
)

// ErrAlreadyAttached is returned when a view which already has a superview
// is attached a second time.
var ErrAlreadyAttached = fmt.Errorf("view already attached: %w", tree.ErrHasParent)

// ErrCycle is returned when a view is attached below itself.
var ErrCycle = errors.New("view cannot be attached to its own subtree")

// Viewer is implemented by View and by every type embedding it.
type Viewer interface {
	layout.Node
	AsView() *View
}

// View is the building block of a view tree. All view kinds embed it.
type View struct {
	tree.Node[*View] // we build on top of general purpose tree

	self       layout.Node               // the outermost value, e.g. a *Label
	kind       string                    // element name for selector matching
	stylename  string                    // space separated style names
	explicit   *style.PropertyMap        // set by ApplyProperties, wins over derived
	derived    *style.PropertyMap        // resolved from the stylesheet
	stylesheet style.Stylesheet          // nil: inherit from superview
	defaults   map[string]style.Property // per-kind default values
}

// New creates a plain view.
func New() *View {
	v := &View{}
	v.InitNode()
	return v
}

// InitNode is called by layout.Builder for views created from a type.
func (v *View) InitNode() {
	v.initAs(v, KindView, nil)
}

func (v *View) initAs(self layout.Node, kind string, defaults map[string]style.Property) {
	v.Payload = v // Payload will always reference the view itself
	v.self = self
	v.kind = kind
	v.defaults = defaults
}

// AsView returns v. For types embedding View, it gives access to the
// embedded view.
func (v *View) AsView() *View {
	return v
}

// initialized is false for views created as a zero value, e.g. &Label{},
// instead of by a constructor or by InitNode.
func (v *View) initialized() bool {
	return v.Payload != nil
}

// Self returns the node v is embedded in, e.g. a *Label, or v itself for
// plain views.
func (v *View) Self() layout.Node {
	if v.self == nil {
		return v
	}
	return v.self
}

// Kind returns the view kind, e.g. "label". It is part of interface
// style.Target.
func (v *View) Kind() string {
	if v.kind == "" {
		return KindView
	}
	return v.kind
}

// Stylename returns the stylename of v. It is part of interface style.Target.
func (v *View) Stylename() string {
	return v.stylename
}

// ParentTarget returns the superview as a style target. It is part of
// interface style.Target.
func (v *View) ParentTarget() style.Target {
	if sv := v.Superview(); sv != nil {
		return sv
	}
	return nil
}

// Superview returns the view v is attached to, or nil.
func (v *View) Superview() *View {
	if p := v.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// Subviews returns the views attached to v, in insertion order.
func (v *View) Subviews() []*View {
	children := v.Children()
	subviews := make([]*View, 0, len(children))
	for _, ch := range children {
		subviews = append(subviews, ch.Payload)
	}
	return subviews
}

// HasStylename returns true if name is one of the space separated names of
// the stylename of v.
func (v *View) HasStylename(name string) bool {
	if name == "" {
		return false
	}
	for _, n := range strings.Fields(v.stylename) {
		if n == name {
			return true
		}
	}
	return false
}

func (v *View) String() string {
	if v == nil {
		return "<nil view>"
	}
	if v.stylename == "" {
		return v.Kind()
	}
	return v.Kind() + "." + strings.Join(strings.Fields(v.stylename), ".")
}

// --- layout.Node -----------------------------------------------------------

var _ layout.Node = (*View)(nil)
var _ style.Target = (*View)(nil)

// AddSubnode attaches child, which has to be an initialized view, as the last
// subview of v. A view may be attached exactly once.
func (v *View) AddSubnode(child layout.Node) error {
	c, ok := child.(Viewer)
	if !ok {
		return fmt.Errorf("%w: cannot attach %T to a view", layout.ErrInvalidNodeType, child)
	}
	cv := c.AsView()
	if !cv.initialized() {
		return fmt.Errorf("%w: %T is not initialized", layout.ErrInvalidNodeType, child)
	}
	if !v.initialized() {
		return fmt.Errorf("%w: cannot attach to uninitialized view", layout.ErrInvalidNodeType)
	}
	if cv.Parent() != nil {
		return fmt.Errorf("%w: %s", ErrAlreadyAttached, cv)
	}
	for anc := v; anc != nil; anc = anc.Superview() {
		if anc == cv {
			return fmt.Errorf("%w: %s", ErrCycle, cv)
		}
	}
	if err := v.AddChild(&cv.Node); err != nil {
		return err
	}
	tracer().Debugf("view: attached %s to %s", cv, v)
	return nil
}

// ApplyProperties sets explicit properties. Explicit properties accumulate
// over calls and always win over properties from a stylesheet. Shorthand
// properties like margin are split into their longhand forms.
func (v *View) ApplyProperties(props *style.PropertyMap) {
	if props.Size() == 0 {
		return
	}
	if v.explicit == nil {
		v.explicit = style.NewPropertyMap()
	}
	for _, kv := range props.Properties() {
		setSplit(v.explicit, kv.Key, kv.Value)
	}
	tracer().Debugf("view %s: explicit properties now %s", v, v.explicit)
}

func setSplit(pmap *style.PropertyMap, key string, value style.Property) {
	if style.IsCompound(key) {
		if kvs, err := style.SplitCompoundProperty(key, value); err == nil {
			for _, kv := range kvs {
				pmap.Set(kv.Key, kv.Value)
			}
			return
		}
		tracer().Infof("view: cannot split %s: %s, keeping it verbatim", key, value)
	}
	pmap.Set(key, value)
}

// SetStylename sets the stylename and resolves the style-derived properties.
func (v *View) SetStylename(name string) {
	v.stylename = strings.TrimSpace(name)
	v.resolve()
}

// SetStylesheet sets the stylesheet of v. A nil stylesheet makes v use the
// stylesheet of its superview. The style-derived properties are resolved
// again.
func (v *View) SetStylesheet(sheet style.Stylesheet) {
	v.stylesheet = sheet
	v.resolve()
}

// Stylesheet returns the stylesheet in effect for v: its own one or the
// nearest one of its superviews.
func (v *View) Stylesheet() style.Stylesheet {
	if v.stylesheet != nil {
		return v.stylesheet
	}
	anc, err := tree.NewWalker(&v.Node).AncestorWith(hasStylesheet).Promise()()
	if err != nil || len(anc) == 0 {
		return nil
	}
	return anc[0].Payload.stylesheet
}

// ApplyStylesheetRecursively sets sheet as the stylesheet of v and of every
// view below v, then resolves their style-derived properties, superviews
// first.
func (v *View) ApplyStylesheetRecursively(sheet style.Stylesheet) {
	if !v.initialized() {
		v.SetStylesheet(sheet)
		return
	}
	_, err := tree.NewWalker(&v.Node).TopDown(
		func(n, parent *tree.Node[*View], pos int) (*tree.Node[*View], error) {
			n.Payload.stylesheet = sheet
			n.Payload.resolve()
			return nil, nil
		}).Promise()()
	if err != nil {
		tracer().Errorf("view %s: restyle failed: %v", v, err)
	}
}

// Restyle resolves the style-derived properties of v again.
func (v *View) Restyle() {
	v.resolve()
}

func (v *View) resolve() {
	sheet := v.Stylesheet()
	if sheet == nil {
		v.derived = nil
		return
	}
	v.derived = style.Resolve(sheet, v)
	tracer().Debugf("view %s: derived properties %s", v, v.derived)
}

// --- Properties ------------------------------------------------------------

// ExplicitProperties returns a copy of the explicit properties of v.
func (v *View) ExplicitProperties() *style.PropertyMap {
	return v.explicit.Clone()
}

// DerivedProperties returns a copy of the properties v got from its
// stylesheet.
func (v *View) DerivedProperties() *style.PropertyMap {
	return v.derived.Clone()
}

// Properties returns the effective local properties of v: derived properties
// overridden by explicit ones. Neither cascading nor defaults are involved.
func (v *View) Properties() *style.PropertyMap {
	return v.derived.Clone().Merge(v.explicit, true)
}

// Property returns the effective local value for key.
func (v *View) Property(key string) (style.Property, bool) {
	if p, ok := v.explicit.Property(key); ok {
		return p, true
	}
	return v.derived.Property(key)
}

// PropertyValue returns the value in effect for key:
//
//  1. the local property of v, if set and not `inherit`,
//  2. for cascading properties and for `inherit`, the nearest superview
//     having it set locally,
//  3. the default for the kind of v,
//  4. the default for all views.
//
// If none of these exist, NullStyle is returned.
func (v *View) PropertyValue(key string) style.Property {
	key = strings.ToLower(key)
	p, ok := v.Property(key)
	if ok && !p.IsInherit() && !p.IsInitial() {
		return p
	}
	if !p.IsInitial() && (p.IsInherit() || style.IsCascading(key)) {
		tracer().Debugf("view %s: cascading for key %s", v, key)
		for sv := v.Superview(); sv != nil; sv = sv.Superview() {
			if q, ok := sv.Property(key); ok && !q.IsInherit() {
				if q.IsInitial() {
					break
				}
				return q
			}
		}
	}
	return v.defaultValue(key)
}

func (v *View) defaultValue(key string) style.Property {
	if p, ok := v.defaults[key]; ok {
		return p
	}
	if p, ok := viewDefaults[key]; ok {
		return p
	}
	return style.NullStyle
}

// --- Typed properties ------------------------------------------------------

// Rect is the frame of a view, relative to its superview.
type Rect struct {
	Left, Top     css.DimenT
	Width, Height css.DimenT
}

func (r Rect) String() string {
	return fmt.Sprintf("(%s, %s, %s, %s)", r.Left, r.Top, r.Width, r.Height)
}

// Frame returns the frame of v from properties left, top, width and height.
func (v *View) Frame() (Rect, error) {
	var r Rect
	var err error
	for _, x := range []struct {
		key string
		d   *css.DimenT
	}{
		{"left", &r.Left}, {"top", &r.Top}, {"width", &r.Width}, {"height", &r.Height},
	} {
		if *x.d, err = css.ParseDimen(v.PropertyValue(x.key)); err != nil {
			return Rect{}, fmt.Errorf("view %s: frame property %s: %w", v, x.key, err)
		}
	}
	return r, nil
}

// Position returns the position of v from property position and the offset
// properties top, right, bottom and left.
func (v *View) Position() (css.PositionT, error) {
	return css.Position(v.PropertyValue("position"), v.PropertyValue)
}

// Display returns the display mode of v.
func (v *View) Display() (css.DisplayMode, error) {
	return css.ParseDisplay(v.PropertyValue("display").String())
}

// IsHidden returns true if v is not displayed, either by display mode or by
// visibility.
func (v *View) IsHidden() bool {
	if d, err := v.Display(); err == nil && d.IsHidden() {
		return true
	}
	return v.PropertyValue("visibility") == "hidden"
}

// BackgroundColor returns the background color of v, or nil for the default.
func (v *View) BackgroundColor() (color.Color, error) {
	return v.PropertyValue("background-color").Color()
}

// Color returns the foreground color of v, or nil for the default.
func (v *View) Color() (color.Color, error) {
	return v.PropertyValue("color").Color()
}
