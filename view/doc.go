/*
Package view implements a styled view tree, to be built with package layout.

Views come in kinds (Label, Button, ImageView, TextField, ScrollView and the
plain View). Every view carries

  - a stylename, which selects rules from a stylesheet,
  - properties derived from the stylesheet,
  - explicit properties, which override the derived ones.

Stylesheets are inherited by subviews, and so are cascading properties like
color or font. Views are not safe for concurrent use.

Views are created by their constructors (New, NewLabel, …) or from a type by
a layout.Builder. Zero values like &Label{} cannot be attached to a view tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package view

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'teacup.view'.
func tracer() tracing.Trace {
	return tracing.Select("teacup.view")
}
