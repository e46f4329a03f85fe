package layout

import (
	"fmt"

	"github.com/raitom/teacup/style"
)

// Builder constructs view trees below a root. Every builder owns its context
// stack and its stylesheet; builders do not share state.
type Builder struct {
	root       RootProvider
	stack      ContextStack
	stylesheet style.Stylesheet
}

// Option configures a Builder.
type Option func(*Builder)

// WithStylesheet presets the stylesheet of a builder. Other than
// SetStylesheet it does not restyle the tree.
func WithStylesheet(sheet style.Stylesheet) Option {
	return func(b *Builder) {
		b.stylesheet = sheet
	}
}

// New creates a builder for a root.
func New(root RootProvider, opts ...Option) *Builder {
	b := &Builder{root: root}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Root returns the root node, or nil if the root provider has none.
func (b *Builder) Root() Node {
	if b.root == nil {
		return nil
	}
	n := b.root.RootNode()
	if isNil(n) {
		return nil
	}
	return n
}

// Depth returns the nesting depth of the block currently executing, 0 outside
// of any block.
func (b *Builder) Depth() int {
	return b.stack.Depth()
}

// Layout configures node:
//
//  1. the builder's stylesheet is assigned to node,
//  2. explicit properties, if any, are applied,
//  3. the stylename, if any, is set, which lets the node resolve its style.
//
// If block is not nil, node becomes the attachment point for subviews while
// block runs. The attachment point is restored when block returns, with or
// without error, or panics. Errors of block are returned unchanged.
func (b *Builder) Layout(node Node, args Args, block Block) (Node, error) {
	if isNil(node) {
		return nil, fmt.Errorf("%w: cannot lay out nil node", ErrInvalidNodeType)
	}
	tracer().Debugf("layout %v with args %s", node, args)
	node.SetStylesheet(b.stylesheet)
	var name string
	var props *style.PropertyMap
	switch m := args.Match(); m {
	case m.NameOnly(&name):
		node.SetStylename(name)
	case m.PropertiesOnly(&props):
		node.ApplyProperties(props)
	case m.NameAndProperties(&name, &props):
		node.ApplyProperties(props)
		node.SetStylename(name)
	case m.Neither():
	}
	if block == nil {
		return node, nil
	}
	err := b.stack.Within(node, func() error {
		return block(node)
	})
	return node, err
}

// Subview creates or takes a node, attaches it and configures it with
// Layout. what is one of
//
//   - a reflect.Type (see TypeOf): a new node of this type is created,
//   - a NodeSpec (see FromType and FromInstance),
//   - a node instance.
//
// Anything not implementing Node is rejected with ErrInvalidNodeType before
// the tree is touched.
//
// The node is attached to the node of the innermost enclosing Layout block,
// or to the builder's root outside of blocks. Attachment happens before
// Layout runs and is not undone if block fails.
func (b *Builder) Subview(what any, args Args, block Block) (Node, error) {
	spec, err := resolveSpec(what)
	if err != nil {
		return nil, err
	}
	parent := b.stack.Top().WithDefault(nil)
	if parent == nil {
		if parent = b.Root(); parent == nil {
			return nil, ErrNoRoot
		}
	}
	node := spec.create()
	if err := parent.AddSubnode(node); err != nil {
		return nil, fmt.Errorf("cannot attach subview from %s: %w", spec, err)
	}
	tracer().Debugf("attached %v to %v", node, parent)
	return b.Layout(node, args, block)
}

// Stylesheet returns the builder's stylesheet, or nil if none has been set.
func (b *Builder) Stylesheet() style.Stylesheet {
	return b.stylesheet
}

// SetStylesheet replaces the builder's stylesheet and restyles the tree.
func (b *Builder) SetStylesheet(sheet style.Stylesheet) {
	b.stylesheet = sheet
	b.Restyle()
}

// Restyle hands the builder's stylesheet to the root node, which applies it
// to the whole tree below it. Nodes added later are styled by Layout, not by
// another restyle.
func (b *Builder) Restyle() {
	root := b.Root()
	if root == nil {
		tracer().Infof("restyle: builder has no root node")
		return
	}
	tracer().Debugf("restyle tree at %v", root)
	root.ApplyStylesheetRecursively(b.stylesheet)
}
