package style

// Stylesheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of stylesheets from the
// construction of the view tree, we introduce an interface
// for stylesheets. Concrete implementations live in sub-packages
// (e.g., see packages douceuradapter and yamlsheet).
//
// The tree builder never looks into a stylesheet; it stores and forwards it.
// Views hand it to Resolve when their stylename is set or when they are
// restyled.
//
// See interface Rule.
type Stylesheet interface {
	AppendRules(Stylesheet) // append rules from another stylesheet (import)
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, in source order
}

// Rule is the type stylesheets consists of.
//
// See interface Stylesheet.
type Rule interface {
	Selector() string        // the prelude / selectors of the rule, e.g. "label.title"
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) Property   // property value for key, e.g. "15"
	IsImportant(string) bool // is property key marked as important?
}

// Target is what the resolver needs to know about a node to match rules
// against it.
type Target interface {
	Kind() string         // element name, e.g. "label"
	Stylename() string    // class name(s), space separated
	ParentTarget() Target // enclosing node or nil
}
