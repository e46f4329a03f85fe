/*
Package yamlsheet implements interface style.Stylesheet for stylesheets
written in YAML.

A YAML stylesheet is a mapping of style names to property mappings:

    base:
      font: Helvetica
    card:
      extends: base
      width: 300
      padding: 8 12
    title:
      extends: [base]
      font-size: 18
      color: "#333 !important"
    "card title":
      color: red

Plain identifiers name styles and become class selectors (".card"), which
match views with the corresponding stylename. A key made of space separated
plain identifiers denotes nested stylenames: "card title" matches views
styled "title" within views styled "card". Every other key is taken as a CSS
selector verbatim, thus in "label.title card" the name card is an element
(view kind). Every key may appear only once.

The special key `extends` (a name or a list of names) copies the properties
of other named styles; properties of the extending style win. A value
suffixed with "!important" is an important declaration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package yamlsheet

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/raitom/teacup/style"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'teacup.style'.
func tracer() tracing.Trace {
	return tracing.Select("teacup.style")
}

// ErrFormat is returned for YAML input not following the stylesheet format.
var ErrFormat = errors.New("malformed YAML stylesheet")

// ErrExtends is returned for `extends` directives naming unknown styles or
// forming a cycle.
var ErrExtends = errors.New("cannot resolve style inheritance")

// Sheet is a stylesheet read from YAML.
type Sheet struct {
	rules []*Rule
}

var _ style.Stylesheet = &Sheet{}

// Option configures parsing of a stylesheet.
type Option func(*config)

type config struct {
	imports []style.Stylesheet
}

// WithImports prepends the rules of other stylesheets. Rules of the parsed
// stylesheet come later in source order and therefore win over imported rules
// of equal specificity.
func WithImports(sheets ...style.Stylesheet) Option {
	return func(c *config) {
		c.imports = append(c.imports, sheets...)
	}
}

// Parse reads a YAML stylesheet.
func Parse(data []byte, opts ...Option) (*Sheet, error) {
	conf := &config{}
	for _, opt := range opts {
		opt(conf)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	sheet := &Sheet{}
	for _, imp := range conf.imports {
		sheet.AppendRules(imp)
	}
	if len(doc.Content) == 0 { // empty document
		return sheet, nil
	}
	styles, err := readStyles(doc.Content[0])
	if err != nil {
		return nil, err
	}
	p := &resolver{styles: styles, state: make(map[string]int)}
	for _, s := range styles {
		props, err := p.resolve(s.name)
		if err != nil {
			return nil, err
		}
		rule := &Rule{selector: selectorFor(s.name)}
		for _, kv := range props {
			rule.set(kv.key, kv.value, kv.important)
		}
		tracer().Debugf("yaml stylesheet: rule %s with %d properties", rule.selector, len(rule.keys))
		sheet.rules = append(sheet.rules, rule)
	}
	return sheet, nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface style.Stylesheet
func (sheet *Sheet) Empty() bool {
	return len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet.
//
// Interface style.Stylesheet
func (sheet *Sheet) Rules() []style.Rule {
	rules := make([]style.Rule, len(sheet.rules))
	for i, r := range sheet.rules {
		rules[i] = r
	}
	return rules
}

// AppendRules appends rules from another stylesheet.
//
// Interface style.Stylesheet
func (sheet *Sheet) AppendRules(other style.Stylesheet) {
	if other == nil {
		return
	}
	for _, r := range other.Rules() {
		rule := &Rule{selector: r.Selector()}
		for _, key := range r.Properties() {
			rule.set(key, r.Value(key), r.IsImportant(key))
		}
		sheet.rules = append(sheet.rules, rule)
	}
}

// --- Rules -----------------------------------------------------------------

// Rule is a YAML style, flattened to include all inherited properties.
type Rule struct {
	selector  string
	keys      []string
	values    map[string]style.Property
	important map[string]bool
}

var _ style.Rule = &Rule{}

func (r *Rule) set(key string, value style.Property, important bool) {
	if r.values == nil {
		r.values = make(map[string]style.Property)
		r.important = make(map[string]bool)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	r.important[key] = important
}

// Selector is part of interface style.Rule.
func (r *Rule) Selector() string {
	return r.selector
}

// Properties is part of interface style.Rule.
func (r *Rule) Properties() []string {
	return append([]string(nil), r.keys...)
}

// Value is part of interface style.Rule.
func (r *Rule) Value(key string) style.Property {
	return r.values[key]
}

// IsImportant is part of interface style.Rule.
func (r *Rule) IsImportant(key string) bool {
	return r.important[key]
}

// --- Reading ---------------------------------------------------------------

type declaration struct {
	key       string
	value     style.Property
	important bool
}

type namedStyle struct {
	name    string
	extends []string
	decls   []declaration
}

func readStyles(root *yaml.Node) ([]*namedStyle, error) {
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of styles", ErrFormat, root.Line)
	}
	var styles []*namedStyle
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, body := root.Content[i], root.Content[i+1]
		s := &namedStyle{name: strings.TrimSpace(key.Value)}
		if line, dup := seen[s.name]; dup {
			return nil, fmt.Errorf("%w: line %d: style %q already defined in line %d",
				ErrFormat, key.Line, s.name, line)
		}
		seen[s.name] = key.Line
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: line %d: style %q: expected a mapping of properties",
				ErrFormat, body.Line, s.name)
		}
		for j := 0; j+1 < len(body.Content); j += 2 {
			k, v := body.Content[j], body.Content[j+1]
			if k.Value == "extends" {
				ext, err := readExtends(v)
				if err != nil {
					return nil, fmt.Errorf("style %q: %w", s.name, err)
				}
				s.extends = append(s.extends, ext...)
				continue
			}
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: property %q of style %q must be a scalar",
					ErrFormat, v.Line, k.Value, s.name)
			}
			value, important := splitImportant(v.Value)
			s.decls = append(s.decls, declaration{strings.ToLower(k.Value), value, important})
		}
		styles = append(styles, s)
	}
	return styles, nil
}

func readExtends(v *yaml.Node) ([]string, error) {
	switch v.Kind {
	case yaml.ScalarNode:
		return []string{v.Value}, nil
	case yaml.SequenceNode:
		names := make([]string, 0, len(v.Content))
		for _, n := range v.Content {
			if n.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: extends must list style names", ErrFormat, n.Line)
			}
			names = append(names, n.Value)
		}
		return names, nil
	}
	return nil, fmt.Errorf("%w: line %d: extends must be a name or a list of names", ErrFormat, v.Line)
}

func splitImportant(s string) (style.Property, bool) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "!important") {
		return style.Property(strings.TrimSpace(strings.TrimSuffix(s, "!important"))), true
	}
	return style.Property(s), false
}

// --- Inheritance -----------------------------------------------------------

const (
	unresolved = iota
	resolving
	resolved
)

type resolver struct {
	styles   []*namedStyle
	state    map[string]int
	resolved map[string][]declaration
}

func (p *resolver) find(name string) *namedStyle {
	for _, s := range p.styles {
		if s.name == name {
			return s
		}
	}
	return nil
}

// resolve flattens a style with all the styles it extends. Bases are applied
// in the order listed, the style's own declarations last.
func (p *resolver) resolve(name string) ([]declaration, error) {
	switch p.state[name] {
	case resolved:
		return p.resolved[name], nil
	case resolving:
		return nil, fmt.Errorf("%w: cyclic inheritance involving style %q", ErrExtends, name)
	}
	s := p.find(name)
	if s == nil {
		return nil, fmt.Errorf("%w: style %q not found", ErrExtends, name)
	}
	p.state[name] = resolving
	var merged []declaration
	for _, base := range s.extends {
		decls, err := p.resolve(base)
		if err != nil {
			return nil, fmt.Errorf("style %q extends %q: %w", name, base, err)
		}
		merged = append(merged, decls...)
	}
	merged = append(merged, s.decls...)
	if p.resolved == nil {
		p.resolved = make(map[string][]declaration)
	}
	p.resolved[name] = merged
	p.state[name] = resolved
	return merged, nil
}

// --- Selectors -------------------------------------------------------------

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// selectorFor turns a style key into a CSS selector. Plain identifiers
// denote stylenames; space separated identifiers denote nested stylenames.
// Anything else is a CSS selector already.
func selectorFor(key string) string {
	fields := strings.Fields(key)
	for _, f := range fields {
		if !identifier.MatchString(f) {
			return key
		}
	}
	return "." + strings.Join(fields, " .")
}
