package view

import (
	"github.com/raitom/teacup/tree"
)

// ViewsWithStylename returns root and all views below root carrying name as
// one of their stylenames, in document order.
func ViewsWithStylename(root Viewer, name string) []*View {
	if root == nil {
		return nil
	}
	rv := root.AsView()
	nodes, err := tree.NewWalker(&rv.Node).Filter(hasStylename(name)).Promise()()
	if err == nil {
		var below []*tree.Node[*View]
		below, err = tree.NewWalker(&rv.Node).DescendentsWith(hasStylename(name)).Promise()()
		nodes = append(nodes, below...)
	}
	if err != nil {
		tracer().Errorf("query for stylename %q failed: %v", name, err)
	}
	views := make([]*View, len(nodes))
	for i, n := range nodes {
		views[i] = n.Payload
	}
	return views
}

// ViewWithStylename returns the first view found by ViewsWithStylename, or
// nil.
func ViewWithStylename(root Viewer, name string) *View {
	if views := ViewsWithStylename(root, name); len(views) > 0 {
		return views[0]
	}
	return nil
}

// ViewsOfKind returns all views below root (excluding root) of a given kind,
// in document order.
func ViewsOfKind(root Viewer, kind string) []*View {
	if root == nil {
		return nil
	}
	nodes, err := tree.NewWalker(&root.AsView().Node).DescendentsWith(
		func(test, _ *tree.Node[*View]) (*tree.Node[*View], error) {
			if test.Payload.Kind() == kind {
				return test, nil
			}
			return nil, nil
		}).Promise()()
	if err != nil {
		tracer().Errorf("query for kind %q failed: %v", kind, err)
	}
	views := make([]*View, len(nodes))
	for i, n := range nodes {
		views[i] = n.Payload
	}
	return views
}

func hasStylename(name string) tree.Predicate[*View] {
	return func(test, _ *tree.Node[*View]) (*tree.Node[*View], error) {
		if test.Payload != nil && test.Payload.HasStylename(name) {
			return test, nil
		}
		return nil, nil
	}
}

func hasStylesheet(test, _ *tree.Node[*View]) (*tree.Node[*View], error) {
	if test.Payload != nil && test.Payload.stylesheet != nil {
		return test, nil
	}
	return nil, nil
}
