package layout

import (
	"fmt"
	"reflect"
)

var nodeInterface = reflect.TypeOf((*Node)(nil)).Elem()

// NodeSpec is a validated recipe for the node Subview attaches: either a
// node type to instantiate or a pre-built node instance. The zero NodeSpec is
// invalid.
type NodeSpec struct {
	create func() Node
	desc   string
}

// FromType validates a node type. Either t or a pointer to t must implement
// Node. Nodes created from the spec are allocated with their zero value and
// then initialized, if the type implements Initializer.
func FromType(t reflect.Type) (NodeSpec, error) {
	if t == nil {
		return NodeSpec{}, fmt.Errorf("%w: type is nil", ErrInvalidNodeType)
	}
	var alloc reflect.Type // the type to allocate a pointer for
	switch {
	case t.Kind() == reflect.Ptr && t.Implements(nodeInterface):
		alloc = t.Elem()
	case t.Kind() != reflect.Interface && t.Kind() != reflect.Ptr && reflect.PtrTo(t).Implements(nodeInterface):
		alloc = t
	default:
		return NodeSpec{}, fmt.Errorf("%w: type %v does not implement layout.Node", ErrInvalidNodeType, t)
	}
	return NodeSpec{
		create: func() Node {
			n := reflect.New(alloc).Interface().(Node)
			if init, ok := n.(Initializer); ok {
				init.InitNode()
			}
			return n
		},
		desc: "type " + t.String(),
	}, nil
}

// FromInstance validates a pre-built node.
func FromInstance(x any) (NodeSpec, error) {
	if isNil(x) {
		return NodeSpec{}, fmt.Errorf("%w: node instance is nil", ErrInvalidNodeType)
	}
	n, ok := x.(Node)
	if !ok {
		return NodeSpec{}, fmt.Errorf("%w: %T does not implement layout.Node", ErrInvalidNodeType, x)
	}
	return NodeSpec{
		create: func() Node { return n },
		desc:   fmt.Sprintf("instance %T", x),
	}, nil
}

// TypeOf returns the reflect.Type of T, to be handed to Subview:
//
//    b.Subview(layout.TypeOf[view.Label](), layout.Name("title"), nil)
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// resolveSpec turns the first argument of Subview into a NodeSpec:
// a NodeSpec is taken as is, a reflect.Type is a node type, everything else
// has to be a node instance.
func resolveSpec(what any) (NodeSpec, error) {
	switch w := what.(type) {
	case NodeSpec:
		if w.create == nil {
			return NodeSpec{}, fmt.Errorf("%w: zero NodeSpec", ErrInvalidNodeType)
		}
		return w, nil
	case reflect.Type:
		return FromType(w)
	}
	return FromInstance(what)
}

func (spec NodeSpec) String() string {
	if spec.create == nil {
		return "NodeSpec(invalid)"
	}
	return "NodeSpec(" + spec.desc + ")"
}
