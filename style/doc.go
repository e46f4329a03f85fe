/*
Package style provides property values, property maps and stylesheets for
view trees.

Overview

Every view of a tree may carry a stylename, a symbolic identifier such as
"title" or "card". A stylesheet consists of rules, each with a selector and a
set of property declarations. Resolving a view's style means matching the
rules of a stylesheet against the view (by its kind and stylename, see
Resolve) and collecting the declared properties.

Stylesheets are abstracted by interface Stylesheet, so that clients may
choose a source format. Sub-packages provide implementations for CSS text
(douceuradapter) and YAML (yamlsheet).

Selector matching is done by https://godoc.org/github.com/andybalholm/cascadia,
which operates on HTML nodes. We therefore mirror a view and its ancestors
as a chain of HTML element nodes when matching.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'teacup.style'.
func tracer() tracing.Trace {
	return tracing.Select("teacup.style")
}
