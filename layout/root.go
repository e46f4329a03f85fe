package layout

// RootProvider is where a builder attaches top-level subviews and where
// restyling starts. There are two variants: a bare node (NodeRoot) and a
// container holding a node (ContainerRoot).
type RootProvider interface {
	RootNode() Node
	isRootProvider()
}

// Container is implemented by controller-like objects exposing exactly one
// node as the root of their view tree.
type Container interface {
	RootNode() Node
}

// NodeRoot makes node the root of a builder.
func NodeRoot(node Node) RootProvider {
	return nodeRoot{node: node}
}

// ContainerRoot makes the root node of c the root of a builder. The root node
// is asked for every time it is needed, thus containers may create it lazily.
func ContainerRoot(c Container) RootProvider {
	return containerRoot{c: c}
}

type nodeRoot struct {
	node Node
}

func (r nodeRoot) RootNode() Node { return r.node }
func (nodeRoot) isRootProvider() {}

type containerRoot struct {
	c Container
}

func (r containerRoot) RootNode() Node {
	if isNil(r.c) {
		return nil
	}
	return r.c.RootNode()
}

func (containerRoot) isRootProvider() {}
