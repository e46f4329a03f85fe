package layout

import (
	"errors"
	"reflect"

	"github.com/raitom/teacup/style"
)

// ErrInvalidNodeType is returned by Subview if it is handed something which
// does not implement Node. Nothing is attached or configured in this case.
var ErrInvalidNodeType = errors.New("not a valid node type")

// ErrInvalidArguments is returned by ParseArgs for call shapes it does not
// support.
var ErrInvalidArguments = errors.New("invalid layout arguments")

// ErrStackUnderflow is the panic value for unbalanced pops of a ContextStack.
// It signals a bug in the builder, never a user error.
var ErrStackUnderflow = errors.New("context stack underflow")

// ErrNoRoot is returned if a builder's root provider has no root node to
// attach to.
var ErrNoRoot = errors.New("builder has no root node")

// Node is what the builder requires from the elements of a view tree.
type Node interface {
	// AddSubnode attaches child as the last child of the node.
	AddSubnode(child Node) error
	// ApplyProperties sets explicit property overrides. They take precedence
	// over style-derived properties.
	ApplyProperties(props *style.PropertyMap)
	// SetStylename sets the node's stylename and resolves its style.
	SetStylename(name string)
	// SetStylesheet assigns a stylesheet without walking the subtree.
	SetStylesheet(sheet style.Stylesheet)
	// ApplyStylesheetRecursively assigns a stylesheet to the node and all its
	// descendants, re-resolving their styles.
	ApplyStylesheetRecursively(sheet style.Stylesheet)
}

// Initializer is implemented by node types which need initialization after
// being allocated by Subview.
type Initializer interface {
	InitNode()
}

// Block is a nested construction step. It is called with the node it belongs
// to; subviews created within the block are attached to that node.
type Block func(Node) error

// isNil checks for nil interfaces and interfaces holding nil pointers.
func isNil(n any) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
