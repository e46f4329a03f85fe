package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a view property. For example, with
//
//     width: 100
//
// a property value of "100" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds view properties. nil is a legal (empty) property map for
// all read operations.
//
// Property keys are case-insensitive and stored in lower case. Values are
// stored verbatim, as some of them (text content, image names) are
// case-sensitive.
type PropertyMap struct {
	m map[string]Property // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]Property)}
}

// PropertiesFrom creates a property map from a map of arbitrary values, as
// clients will usually write them down, e.g.
//
//    style.PropertiesFrom(map[string]any{"width": 100, "text": "Hello"})
//
// Non-string values are formatted with their default format.
func PropertiesFrom(m map[string]any) *PropertyMap {
	pmap := NewPropertyMap()
	for k, v := range m {
		switch x := v.(type) {
		case Property:
			pmap.Set(k, x)
		case string:
			pmap.Set(k, Property(x))
		case fmt.Stringer:
			pmap.Set(k, Property(x.String()))
		default:
			pmap.Set(k, Property(fmt.Sprint(x)))
		}
	}
	return pmap
}

func (pmap *PropertyMap) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, k := range pmap.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, pmap.m[k])
	}
	b.WriteString("}")
	return b.String()
}

// Size returns the number of properties.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	if pmap == nil {
		return NullStyle, false
	}
	p, ok := pmap.m[strings.ToLower(key)]
	return p, ok
}

// Get returns a property value or NullStyle.
func (pmap *PropertyMap) Get(key string) Property {
	p, _ := pmap.Property(key)
	return p
}

// Set a property's value. Overwrites an existing value, if present.
// Setting a property on a nil map is a no-op.
func (pmap *PropertyMap) Set(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]Property)
	}
	pmap.m[strings.ToLower(key)] = value
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pmap *PropertyMap) Add(key string, value Property) {
	if _, exists := pmap.Property(key); !exists {
		pmap.Set(key, value)
	}
}

// Delete removes a property.
func (pmap *PropertyMap) Delete(key string) {
	if pmap == nil {
		return
	}
	delete(pmap.m, strings.ToLower(key))
}

// Keys returns the property keys in sorted order.
func (pmap *PropertyMap) Keys() []string {
	if pmap == nil {
		return nil
	}
	keys := make([]string, 0, len(pmap.m))
	for k := range pmap.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Properties returns all properties, sorted by key.
func (pmap *PropertyMap) Properties() []KeyValue {
	keys := pmap.Keys()
	r := make([]KeyValue, len(keys))
	for i, k := range keys {
		r[i] = KeyValue{k, pmap.m[k]}
	}
	return r
}

// Clone returns a copy of pmap. Cloning nil results in a new empty map.
func (pmap *PropertyMap) Clone() *PropertyMap {
	c := NewPropertyMap()
	if pmap != nil {
		for k, v := range pmap.m {
			c.m[k] = v
		}
	}
	return c
}

// Merge transfers all properties from other into pmap. If overwrite is set,
// existing values will be overwritten, otherwise only new values are set.
// It returns pmap, allocating a new map if pmap is nil.
func (pmap *PropertyMap) Merge(other *PropertyMap, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	if other == nil {
		return pmap
	}
	for k, v := range other.m {
		if overwrite {
			pmap.Set(k, v)
		} else {
			pmap.Add(k, v)
		}
	}
	return pmap
}

// Equal returns true if both maps contain the same properties.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	if pmap.Size() != other.Size() {
		return false
	}
	for _, kv := range pmap.Properties() {
		if p, ok := other.Property(kv.Key); !ok || p != kv.Value {
			return false
		}
	}
	return true
}

// --- Inheritance and shorthands ---------------------------------------

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade up
// the view tree.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "font") {
		return true
	}
	switch key {
	case "color", "text-color", "tint-color", "direction", "text-align":
		return true
	case "letter-spacing", "line-height", "visibility", "white-space":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3 5")
// will return
//    "padding-top"    => "3"
//    "padding-right"  => "5"
//    "padding-bottom" => "3"
//    "padding-left"   => "5"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompound is a predicate for shortcut properties which
// SplitCompoundProperty is able to split.
func IsCompound(key string) bool {
	switch key {
	case "margin", "padding", "border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
