/*
Package tree implements a general purpose tree of mutable nodes.

Nodes carry a payload of a type parameter and link to their parent. Trees
of view nodes are built on top of this type by composition: a view embeds a
tree.Node and sets the payload to itself.

Walkers provide a small query language on top of the tree, used for example
to find all views carrying a certain stylename.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'teacup.tree'.
func tracer() tracing.Trace {
	return tracing.Select("teacup.tree")
}
