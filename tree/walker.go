package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is flagged if a walker step is called with a nil predicate
// or action.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is flagged if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A typical usage of a Walker looks like this:
//
//    w := NewWalker(node)
//    nodes, err := w.DescendentsWith(somePredicate).TopDown(someAction).Promise()()
//
// Walker steps form a small Domain Specific Language (DSL), similar in
// concept to JQuery. Every step operates on the selection produced by the
// previous step. Steps run synchronously in the caller's goroutine and
// preserve document order (pre-order, children left to right).
//
// Once a step has flagged an error, subsequent steps are skipped and the
// error is handed out by Promise().
type Walker[T comparable] struct {
	initial   *Node[T]   // initial node of (sub-)tree
	selection []*Node[T] // current selection of nodes
	err       error      // last error occured
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent step will have this initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-chain of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{
		initial:   initial,
		selection: []*Node[T]{initial},
	}
}

// Promise returns a function to retrieve the current selection and the last
// error. It is kept as a function value so that walker chains read the same
// way whether or not their steps are deferred.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	selection, err := w.selection, w.err
	return func() ([]*Node[T], error) {
		return selection, err
	}
}

// step applies f to every node of the current selection and concatenates
// the results into a new selection.
func (w *Walker[T]) step(f func(*Node[T]) ([]*Node[T], error)) *Walker[T] {
	if w == nil || w.err != nil {
		return w
	}
	var next []*Node[T]
	for _, n := range w.selection {
		r, err := f(n)
		if err != nil {
			w.err = err
			break
		}
		next = append(next, r...)
	}
	w.selection = next
	return w
}

func (w *Walker[T]) fail(err error) *Walker[T] {
	if w != nil && w.err == nil {
		w.err = err
	}
	return w
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// ----------------------------------------------------------------------

// Parent replaces every node of the selection by its parent. Root nodes
// do not produce a result.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	return w.step(func(n *Node[T]) ([]*Node[T], error) {
		if p := n.Parent(); p != nil {
			return []*Node[T]{p}, nil
		}
		return nil, nil
	})
}

// AncestorWith finds the nearest ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(n *Node[T]) ([]*Node[T], error) {
		for anc := n.Parent(); anc != nil; anc = anc.Parent() {
			match, err := predicate(anc, n)
			if err != nil {
				return nil, err
			}
			if match != nil {
				return []*Node[T]{match}, nil
			}
		}
		return nil, nil
	})
}

// DescendentsWith selects all descendents matching the given predicate,
// in document order. The start node is not included.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(n *Node[T]) ([]*Node[T], error) {
		var matches []*Node[T]
		var descend func(*Node[T]) error
		descend = func(node *Node[T]) error {
			for _, ch := range node.children {
				if ch == nil {
					continue
				}
				match, err := predicate(ch, n)
				if err != nil {
					return err
				}
				if match != nil {
					matches = append(matches, match)
				}
				if err = descend(ch); err != nil {
					return err
				}
			}
			return nil
		}
		err := descend(n)
		return matches, err
	})
}

// AllDescendents selects all descendents of the current nodes.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter keeps the nodes of the selection matching a predicate.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if f == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(n *Node[T]) ([]*Node[T], error) {
		match, err := f(n, n)
		if err != nil || match == nil {
			return nil, err
		}
		return []*Node[T]{match}, nil
	})
}

// Action is a function type to operate on tree nodes.
// Resulting nodes form the selection of the next step.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses the sub-trees starting at (and including) the nodes
// of the selection. The traversal guarantees that parents are always
// processed before their children.
//
// If the action function returns an error for a node,
// the walk stops and the error is flagged.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(n *Node[T]) ([]*Node[T], error) {
		var results []*Node[T]
		var visit func(node, parent *Node[T], position int) error
		visit = func(node, parent *Node[T], position int) error {
			r, err := action(node, parent, position)
			tracer().Debugf("action for node %s returned: %v, err=%v", node, r, err)
			if err != nil {
				return err
			}
			if r != nil {
				results = append(results, r)
			}
			for i, ch := range node.children {
				if err = visit(ch, node, i); err != nil {
					return err
				}
			}
			return nil
		}
		pos := 0
		if p := n.Parent(); p != nil {
			pos = p.IndexOfChild(n)
		}
		err := visit(n, n.Parent(), pos)
		return results, err
	})
}
