/*
Package layout is a declarative builder for view trees.

Overview

A Builder constructs a hierarchy of nodes in one nested expression and binds
each node to style information as it goes:

    b := layout.New(layout.NodeRoot(rootView))
    b.Subview(layout.TypeOf[view.View](), layout.Name("card"), func(card layout.Node) error {
        _, err := b.Subview(layout.TypeOf[view.Label](), layout.Name("title"), nil)
        return err
    })

Subview creates (or takes) a node, attaches it to the current attachment point
and configures it with Layout. Layout assigns the builder's stylesheet, the
explicit property overrides and the stylename to a node, and, if given a block,
runs the block with the node as the current attachment point. Attachment
points are tracked by a context stack owned by the builder; nested blocks
therefore attach their subviews to the enclosing node, and the top-level calls
attach to the builder's root.

Style resolution is not done here. Nodes receive a stylename and a stylesheet,
and it is up to the node implementation to compute style-derived properties
from them (see package view for the reference implementation). Assigning a new
stylesheet to the builder restyles the whole tree by handing the stylesheet
to the root node, which applies it recursively.

Builders are meant to be used from a single goroutine, usually the one owning
the view tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'teacup.layout'.
func tracer() tracing.Trace {
	return tracing.Select("teacup.layout")
}
