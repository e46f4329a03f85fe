package view

import (
	"fmt"

	"github.com/raitom/teacup/layout"
)

// Controller owns exactly one view, the root of its view tree. The view is
// created on first access unless it has been set with SetView.
//
// Controllers are meant as layout.Container for a builder:
//
//     c := &view.Controller{}
//     b := layout.New(layout.ContainerRoot(c))
type Controller struct {
	Title string
	view  Viewer
}

var _ layout.Container = (*Controller)(nil)

// NewController creates a controller for a given root view. root may be nil.
func NewController(title string, root Viewer) *Controller {
	return &Controller{Title: title, view: root}
}

// RootNode returns the root view. It is part of interface layout.Container.
func (c *Controller) RootNode() layout.Node {
	return c.Root().Self()
}

// Root returns the root view, creating a plain view if none has been set.
func (c *Controller) Root() *View {
	if c.view == nil {
		tracer().Debugf("controller %q: creating root view", c.Title)
		c.view = New()
	}
	return c.view.AsView()
}

// SetView replaces the root view. A nil view makes the controller create a
// new one on next access. Views which have not been created by a constructor
// are rejected.
func (c *Controller) SetView(v Viewer) error {
	if v != nil && !v.AsView().initialized() {
		return fmt.Errorf("%w: %T is not initialized", layout.ErrInvalidNodeType, v)
	}
	c.view = v
	return nil
}

// IsViewLoaded returns true if the controller has a root view.
func (c *Controller) IsViewLoaded() bool {
	return c.view != nil
}
