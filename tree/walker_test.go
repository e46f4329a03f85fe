package tree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

// createTreeForTest builds
//
//    1
//    ├── 2
//    │   ├── 4
//    │   └── 5
//    └── 3
//        └── 6
func createTreeForTest() (*Node[int], []*Node[int]) {
	nodes := make([]*Node[int], 7)
	for i := 1; i <= 6; i++ {
		nodes[i] = NewNode(i)
	}
	nodes[1].AddChild(nodes[2])
	nodes[1].AddChild(nodes[3])
	nodes[2].AddChild(nodes[4])
	nodes[2].AddChild(nodes[5])
	nodes[3].AddChild(nodes[6])
	return nodes[1], nodes
}

func printTree(root *Node[int]) string {
	printer := tp.New()
	var add func(tp.Tree, *Node[int])
	add = func(branch tp.Tree, n *Node[int]) {
		b := branch.AddBranch(fmt.Sprintf("%d", n.Payload))
		for _, ch := range n.Children() {
			add(b, ch)
		}
	}
	add(printer, root)
	return printer.String()
}

func payloads(nodes []*Node[int]) []int {
	r := make([]int, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}

func TestNodeAttachOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "teacup.tree")
	defer teardown()
	//
	a, b, c := NewNode(1), NewNode(2), NewNode(3)
	if err := a.AddChild(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := b.AddChild(c)
	if !errors.Is(err, ErrHasParent) {
		t.Errorf("expected re-attachment to fail with ErrHasParent, got %v", err)
	}
	if b.ChildCount() != 0 || c.Parent() != a {
		t.Error("expected failed re-attachment to leave the trees unchanged")
	}
	if a.AddChild(a) == nil {
		t.Error("expected attaching a node to itself to fail")
	}
}

func TestNodeNavigation(t *testing.T) {
	root, nodes := createTreeForTest()
	t.Logf("tree =\n%s", printTree(root))
	if nodes[5].Root() != root {
		t.Errorf("expected root of 5 to be 1, is %v", nodes[5].Root())
	}
	if nodes[5].Depth() != 2 {
		t.Errorf("expected depth of 5 to be 2, is %d", nodes[5].Depth())
	}
	if i := nodes[2].IndexOfChild(nodes[5]); i != 1 {
		t.Errorf("expected index of 5 to be 1, is %d", i)
	}
	if _, ok := root.Child(2); ok {
		t.Error("did not expect child #2 of root to exist")
	}
}

func TestWalkerDescendents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "teacup.tree")
	defer teardown()
	//
	root, _ := createTreeForTest()
	nodes, err := NewWalker(root).AllDescendents().Promise()()
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(payloads(nodes)) != "[2 4 5 3 6]" {
		t.Errorf("expected descendents in document order, have %v", payloads(nodes))
	}
	isLeaf := func(test, _ *Node[int]) (*Node[int], error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
	leafs, _ := NewWalker(root).DescendentsWith(isLeaf).Promise()()
	if fmt.Sprint(payloads(leafs)) != "[4 5 6]" {
		t.Errorf("expected leafs [4 5 6], have %v", payloads(leafs))
	}
	kept, _ := NewWalker(root).AllDescendents().Filter(isLeaf).Promise()()
	if fmt.Sprint(payloads(kept)) != "[4 5 6]" {
		t.Errorf("expected filter to keep leafs [4 5 6], have %v", payloads(kept))
	}
}

func TestWalkerAncestor(t *testing.T) {
	root, nodes := createTreeForTest()
	isOdd := func(test, _ *Node[int]) (*Node[int], error) {
		if test.Payload%2 == 1 {
			return test, nil
		}
		return nil, nil
	}
	anc, err := NewWalker(nodes[4]).AncestorWith(isOdd).Promise()()
	if err != nil || len(anc) != 1 || anc[0] != root {
		t.Errorf("expected odd ancestor of 4 to be 1, have %v (err=%v)", anc, err)
	}
	p, _ := NewWalker(root).Parent().Promise()()
	if len(p) != 0 {
		t.Errorf("expected root to have no parent, have %v", p)
	}
}

func TestWalkerTopDown(t *testing.T) {
	root, _ := createTreeForTest()
	var order []int
	_, err := NewWalker(root).TopDown(func(n, parent *Node[int], pos int) (*Node[int], error) {
		order = append(order, n.Payload)
		return n, nil
	}).Promise()()
	if err != nil || fmt.Sprint(order) != "[1 2 4 5 3 6]" {
		t.Errorf("unexpected top-down order %v (err=%v)", order, err)
	}
}

func TestWalkerErrors(t *testing.T) {
	var w *Walker[int]
	if _, err := w.AllDescendents().Promise()(); !errors.Is(err, ErrEmptyTree) {
		t.Errorf("expected nil walker to flag ErrEmptyTree, got %v", err)
	}
	root, _ := createTreeForTest()
	if _, err := NewWalker(root).Filter(nil).Promise()(); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected nil filter to flag ErrInvalidFilter, got %v", err)
	}
	boom := errors.New("boom")
	_, err := NewWalker(root).TopDown(func(n, _ *Node[int], _ int) (*Node[int], error) {
		if n.Payload == 3 {
			return nil, boom
		}
		return n, nil
	}).AllDescendents().Promise()()
	if !errors.Is(err, boom) {
		t.Errorf("expected action error to be handed out, got %v", err)
	}
}
