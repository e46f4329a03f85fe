package view_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/raitom/teacup/layout"
	"github.com/raitom/teacup/style"
	"github.com/raitom/teacup/style/douceuradapter"
	"github.com/raitom/teacup/style/yamlsheet"
	"github.com/raitom/teacup/tree"
	"github.com/raitom/teacup/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCSS = `
label { lines: 2; }
.title { color: #ff0000; text-align: center; width: 100; }
label.title { height: 20; }
.card { background-color: #00ff00; color: blue; margin: 4 8; }
.card .title { font-size: 18; }
.hidden { display: none; }
`

var (
	typeView   = layout.TypeOf[view.View]()
	typeLabel  = layout.TypeOf[view.Label]()
	typeButton = layout.TypeOf[view.Button]()
)

func mustView(t *testing.T, n layout.Node, err error) *view.View {
	t.Helper()
	require.NoError(t, err)
	v, ok := n.(view.Viewer)
	require.True(t, ok, "expected a view, have %T", n)
	return v.AsView()
}

func TestScenarioSubviewUnderRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "teacup.layout")
	defer teardown()
	//
	root := view.New()
	b := layout.New(layout.NodeRoot(root))
	n, err := b.Subview(typeLabel, layout.NoArgs(), nil)
	l1 := mustView(t, n, err)
	_, isLabel := n.(*view.Label)
	assert.True(t, isLabel)
	assert.Equal(t, []*view.View{l1}, root.Subviews())
	assert.Equal(t, view.KindLabel, l1.Kind())
	assert.Same(t, n, l1.Self())
}

func TestScenarioNestedSubview(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "teacup.layout")
	defer teardown()
	//
	root := view.New()
	b := layout.New(layout.NodeRoot(root))
	var l2 *view.View
	n, err := b.Subview(typeView, layout.NoArgs(), func(layout.Node) error {
		n, err := b.Subview(typeLabel, layout.Name("title"), nil)
		if err == nil {
			l2 = n.(*view.Label).AsView()
		}
		return err
	})
	c := mustView(t, n, err)
	require.NotNil(t, l2)
	assert.Equal(t, "title", l2.Stylename())
	assert.Same(t, c, l2.Superview(), "label is attached to the container")
	assert.Equal(t, []*view.View{c}, root.Subviews(), "label is not attached to the root")
	assert.Equal(t, 0, b.Depth())
}

func TestExplicitPropertiesOverrideStylename(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "teacup.view")
	defer teardown()
	//
	sheet := douceuradapter.MustParse(testCSS)
	root := view.New()
	b := layout.New(layout.NodeRoot(root), layout.WithStylesheet(sheet))
	n, err := b.Subview(typeLabel, layout.NameAndProps("title", layout.P{"width": 50}.Map()), nil)
	l := mustView(t, n, err)
	assert.Equal(t, style.Property("50"), l.PropertyValue("width"), "explicit wins")
	assert.Equal(t, style.Property("100"), l.DerivedProperties().Get("width"))
	assert.Equal(t, style.Property("20"), l.PropertyValue("height"))
	assert.Equal(t, style.Property("center"), l.PropertyValue("text-align"))
	assert.Equal(t, 2, n.(*view.Label).Lines(), "kind selector applies")

	n, err = b.Subview(typeLabel, layout.Name("title"), nil)
	l = mustView(t, n, err)
	assert.Equal(t, style.Property("100"), l.PropertyValue("width"))
}

func TestRestyleAppliesToExistingViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "teacup.view")
	defer teardown()
	//
	root := view.New()
	b := layout.New(layout.NodeRoot(root))
	var title *view.View
	n, err := b.Subview(typeView, layout.Name("card"), func(layout.Node) error {
		n, err := b.Subview(typeLabel, layout.Name("title"), nil)
		title = mustView(t, n, err)
		return err
	})
	card := mustView(t, n, err)
	assert.Equal(t, 0, title.DerivedProperties().Size(), "no stylesheet yet")

	sheet := douceuradapter.MustParse(testCSS)
	b.SetStylesheet(sheet)
	assert.Same(t, sheet, title.Stylesheet())
	assert.Equal(t, style.Property("#00ff00"), card.PropertyValue("background-color"))
	assert.Equal(t, style.Property("8"), card.PropertyValue("margin-left"))
	assert.Equal(t, style.Property("18"), title.PropertyValue("font-size"))

	n, err = b.Subview(typeButton, layout.Name("title"), nil)
	late := mustView(t, n, err)
	assert.Equal(t, style.Property("100"), late.PropertyValue("width"), "styled by layout")
	assert.Equal(t, style.Property(""), late.PropertyValue("font-size"), "not within a card")
}

func TestCascadingProperties(t *testing.T) {
	sheet := douceuradapter.MustParse(testCSS)
	root := view.New()
	b := layout.New(layout.NodeRoot(root), layout.WithStylesheet(sheet))
	var plain, inherit, titled *view.View
	_, err := b.Subview(typeView, layout.Name("card"), func(layout.Node) error {
		n, err := b.Subview(typeLabel, layout.NoArgs(), nil)
		plain = mustView(t, n, err)
		n, err = b.Subview(typeLabel, layout.NameAndProps("title", layout.P{"color": "inherit"}.Map()), nil)
		inherit = mustView(t, n, err)
		n, err = b.Subview(typeLabel, layout.Name("title"), nil)
		titled = mustView(t, n, err)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, style.Property("blue"), plain.PropertyValue("color"), "color cascades")
	assert.Equal(t, style.Property("blue"), inherit.PropertyValue("color"), "explicit inherit")
	assert.Equal(t, style.Property("#ff0000"), titled.PropertyValue("color"))
	assert.Equal(t, style.Property("0"), plain.PropertyValue("margin-left"), "margins do not cascade")
	assert.Equal(t, style.Property("left"), plain.PropertyValue("text-align"), "kind default")
	assert.Equal(t, style.Property("block"), root.PropertyValue("display"))
	assert.Equal(t, style.Property("inline"), plain.PropertyValue("display"))
	c, err := plain.Color()
	require.NoError(t, err)
	r, g, bl, _ := c.RGBA()
	assert.True(t, r == 0 && g == 0 && bl > 0, "expected blue, have %v", c)
	c, err = root.Color()
	assert.NoError(t, err)
	assert.Nil(t, c, "default color")
}

func TestFramePositionDisplay(t *testing.T) {
	sheet := douceuradapter.MustParse(testCSS)
	root := view.New()
	b := layout.New(layout.NodeRoot(root), layout.WithStylesheet(sheet))
	n, err := b.Subview(typeLabel, layout.NameAndProps("title", layout.P{
		"left": "10%", "position": "absolute", "top": 5,
	}.Map()), nil)
	l := mustView(t, n, err)
	frame, err := l.Frame()
	require.NoError(t, err)
	t.Logf("frame = %s", frame)
	assert.True(t, frame.Left.IsPercent())
	assert.True(t, frame.Top.IsAbsolute())
	assert.True(t, frame.Width.IsAbsolute())
	assert.True(t, frame.Height.IsAbsolute())
	pos, err := l.Position()
	require.NoError(t, err)
	assert.True(t, pos.IsAbsolute())
	assert.False(t, l.IsHidden())

	frame, err = root.Frame()
	require.NoError(t, err)
	assert.True(t, frame.Width.IsAuto())
	assert.True(t, frame.Left.IsUnset())
	pos, _ = root.Position()
	assert.True(t, pos.IsStatic())

	n, err = b.Subview(typeView, layout.Name("hidden"), nil)
	assert.True(t, mustView(t, n, err).IsHidden())
	n, err = b.Subview(typeView, layout.Props(layout.P{"width": "3 furlongs"}.Map()), nil)
	_, err = mustView(t, n, err).Frame()
	assert.Error(t, err)
}

func TestAttachOnce(t *testing.T) {
	root, other := view.New(), view.New()
	l := view.NewLabel()
	require.NoError(t, root.AddSubnode(l))
	err := other.AddSubnode(l)
	assert.True(t, errors.Is(err, view.ErrAlreadyAttached))
	assert.True(t, errors.Is(err, tree.ErrHasParent))
	assert.Len(t, other.Subviews(), 0)

	err = l.AddSubnode(root)
	assert.True(t, errors.Is(err, view.ErrCycle))
	err = root.AddSubnode(root)
	assert.True(t, errors.Is(err, view.ErrCycle))
	assert.Len(t, root.Subviews(), 1)
}

type alien struct{ view.View }

type notAView struct{}

func (notAView) AddSubnode(layout.Node) error { return nil }
func (notAView) ApplyProperties(*style.PropertyMap) {}
func (notAView) SetStylename(string) {}
func (notAView) SetStylesheet(style.Stylesheet) {}
func (notAView) ApplyStylesheetRecursively(style.Stylesheet) {}

func TestAttachNonView(t *testing.T) {
	root := view.New()
	err := root.AddSubnode(notAView{})
	assert.True(t, errors.Is(err, layout.ErrInvalidNodeType))
	err = root.AddSubnode(&alien{})
	assert.True(t, errors.Is(err, layout.ErrInvalidNodeType), "zero value views are not initialized")
	assert.Len(t, root.Subviews(), 0)
}

func TestUninitializedInstanceRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "teacup.view")
	defer teardown()
	//
	sheet := douceuradapter.MustParse(`label.title { color: #ff0000; }`)
	root := view.New()
	b := layout.New(layout.NodeRoot(root), layout.WithStylesheet(sheet))
	n, err := b.Subview(&view.Label{}, layout.Name("title"), nil)
	assert.True(t, errors.Is(err, layout.ErrInvalidNodeType), "have %v", err)
	assert.Nil(t, n)
	assert.Len(t, root.Subviews(), 0)

	err = (&view.View{}).AddSubnode(view.NewLabel())
	assert.True(t, errors.Is(err, layout.ErrInvalidNodeType))

	n, err = b.Subview(view.NewLabel(), layout.Name("title"), nil)
	l := mustView(t, n, err)
	assert.Equal(t, view.KindLabel, l.Kind())
	assert.Equal(t, style.Property("#ff0000"), l.PropertyValue("color"))
	assert.Equal(t, style.Property("inline"), l.PropertyValue("display"))
	_, isLabel := l.Self().(*view.Label)
	assert.True(t, isLabel)

	c := &view.Controller{}
	err = c.SetView(&view.Label{})
	assert.True(t, errors.Is(err, layout.ErrInvalidNodeType))
	assert.False(t, c.IsViewLoaded())
	require.NoError(t, c.SetView(view.NewScrollView()))
	assert.Equal(t, view.KindScrollView, c.Root().Kind())
}

func TestStylesheetFromSuperview(t *testing.T) {
	sheet := douceuradapter.MustParse(testCSS)
	root, card, l := view.New(), view.New(), view.NewLabel()
	root.SetStylesheet(sheet)
	require.NoError(t, root.AddSubnode(card))
	require.NoError(t, card.AddSubnode(l))
	assert.Same(t, sheet, l.Stylesheet(), "nearest superview with a stylesheet")
	l.Restyle()
	assert.Equal(t, 2, l.Lines())
	other := douceuradapter.MustParse(`label { lines: 3; }`)
	card.SetStylesheet(other)
	assert.Same(t, other, l.Stylesheet())
	assert.Nil(t, view.New().Stylesheet())
}

func TestViewsWithStylename(t *testing.T) {
	root := view.New()
	b := layout.New(layout.NodeRoot(root))
	_, err := b.Subview(typeView, layout.Name("card"), func(layout.Node) error {
		if _, err := b.Subview(typeLabel, layout.Name("title main"), nil); err != nil {
			return err
		}
		_, err := b.Subview(typeButton, layout.Name("action"), nil)
		return err
	})
	require.NoError(t, err)
	_, err = b.Subview(typeLabel, layout.Name("title"), nil)
	require.NoError(t, err)

	titles := view.ViewsWithStylename(root, "title")
	require.Len(t, titles, 2)
	assert.Equal(t, "label.title.main", titles[0].String())
	assert.Equal(t, "label.title", titles[1].String())
	assert.Same(t, titles[0], view.ViewWithStylename(root, "main"))
	assert.Nil(t, view.ViewWithStylename(root, "nope"))
	assert.Len(t, view.ViewsWithStylename(root, ""), 0)
	card := view.ViewWithStylename(root, "card")
	require.NotNil(t, card)
	assert.Len(t, view.ViewsWithStylename(card, "card"), 1, "root itself is included")
	assert.Len(t, view.ViewsOfKind(root, view.KindLabel), 2)
	assert.Len(t, view.ViewsOfKind(card, view.KindButton), 1)
}

func TestControllerAsRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "teacup.view")
	defer teardown()
	//
	c := &view.Controller{Title: "main"}
	assert.False(t, c.IsViewLoaded())
	b := layout.New(layout.ContainerRoot(c))
	_, err := b.Subview(view.NewLabel(), layout.Name("title"), nil)
	require.NoError(t, err)
	assert.True(t, c.IsViewLoaded())
	assert.Len(t, c.Root().Subviews(), 1)

	scroller := view.NewScrollView()
	c = view.NewController("scrolling", scroller)
	assert.Same(t, scroller, c.RootNode())
	b = layout.New(layout.ContainerRoot(c))
	_, err = b.Subview(typeLabel, layout.NoArgs(), nil)
	require.NoError(t, err)
	assert.Len(t, scroller.Subviews(), 1)
	assert.Equal(t, "vertical", scroller.ScrollDirection())
}

func TestKindAccessors(t *testing.T) {
	root := view.New()
	b := layout.New(layout.NodeRoot(root))
	n, err := b.Subview(typeButton, layout.Props(layout.P{"text": "OK"}.Map()), nil)
	require.NoError(t, err)
	button := n.(*view.Button)
	assert.Equal(t, "OK", button.Title())
	assert.True(t, button.IsEnabled())

	n, err = b.Subview(layout.TypeOf[view.TextField](), layout.Props(layout.P{
		"placeholder": "Name", "secure": true,
	}.Map()), nil)
	require.NoError(t, err)
	tf := n.(*view.TextField)
	assert.Equal(t, "Name", tf.Placeholder())
	assert.True(t, tf.IsSecure())
	assert.True(t, tf.IsEditable())
	assert.Equal(t, "", tf.Text())

	n, err = b.Subview(layout.TypeOf[view.ImageView](), layout.Props(layout.P{"image": "Logo.png"}.Map()), nil)
	require.NoError(t, err)
	iv := n.(*view.ImageView)
	assert.Equal(t, "Logo.png", iv.Image(), "values keep their case")
	assert.Equal(t, "scale-to-fit", iv.ContentMode())
	assert.Equal(t, view.KindImageView, iv.Kind())
}

func TestYAMLStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "teacup.view")
	defer teardown()
	//
	base := douceuradapter.MustParse(`.headline { color: black; letter-spacing: 1; }`)
	sheet, err := yamlsheet.Parse([]byte(`
base:
  color: "#333333"
  font-family: Helvetica
headline:
  extends: base
  font-size: 24
label.headline:
  lines: 0
`), yamlsheet.WithImports(base))
	require.NoError(t, err)
	root := view.New()
	b := layout.New(layout.NodeRoot(root), layout.WithStylesheet(sheet))
	n, err := b.Subview(typeLabel, layout.Name("headline"), nil)
	l := mustView(t, n, err)
	assert.Equal(t, style.Property("#333333"), l.PropertyValue("color"), "later rule wins")
	assert.Equal(t, style.Property("1"), l.PropertyValue("letter-spacing"), "imported")
	assert.Equal(t, style.Property("Helvetica"), l.PropertyValue("font-family"), "extended")
	assert.Equal(t, style.Property("24"), l.PropertyValue("font-size"))
	assert.Equal(t, 0, n.(*view.Label).Lines())
}
