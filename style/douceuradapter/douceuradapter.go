/*
Package douceuradapter is a concrete implementation of interface style.Stylesheet,
reading stylesheets in CSS syntax.

    .card         { width: 300; padding: 8 12; }
    label.title   { font-size: 18; color: #333; }
    .card .title  { color: red !important; }

Element names are view kinds, class names are stylenames. Values are taken
verbatim; interpretation is up to the views.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/raitom/teacup/style"
)

// CSSStyles is an adapter for interface style.Stylesheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface style.Stylesheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse reads a stylesheet in CSS syntax. At-rules (@media etc.) are not
// supported and are dropped.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	sheet := Wrap(c)
	rules := sheet.css.Rules[:0]
	for _, r := range sheet.css.Rules {
		if r.Kind == css.QualifiedRule {
			rules = append(rules, r)
		}
	}
	sheet.css.Rules = rules
	return sheet, nil
}

// MustParse is like Parse, but panics on error. It is intended for
// stylesheets compiled into a program.
func MustParse(text string) *CSSStyles {
	sheet, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return sheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface style.Stylesheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. The other stylesheet
// may be of any implementation; its rules are converted to CSS rules.
//
// Interface style.Stylesheet
func (sheet *CSSStyles) AppendRules(other style.Stylesheet) {
	if other == nil {
		return
	}
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() {
		sheet.css.Rules = append(sheet.css.Rules, convertRule(r))
	}
}

func convertRule(r style.Rule) *css.Rule {
	cr := css.NewRule(css.QualifiedRule)
	cr.Prelude = r.Selector()
	cr.Selectors = []string{r.Selector()}
	for _, key := range r.Properties() {
		cr.Declarations = append(cr.Declarations, &css.Declaration{
			Property:  key,
			Value:     r.Value(key).String(),
			Important: r.IsImportant(key),
		})
	}
	return cr
}

// Rules returns all the rules of a stylesheet.
//
// Interface style.Stylesheet
func (sheet *CSSStyles) Rules() []style.Rule {
	rules := make([]style.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		rules[i] = Rule(*r)
	}
	return rules
}

func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ style.Stylesheet = &CSSStyles{}

// Rule is an adapter for interface style.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15".
// If a key is declared more than once, the last important declaration wins,
// or else the last declaration.
func (r Rule) Value(key string) style.Property {
	if d := r.declaration(key); d != nil {
		return style.Property(d.Value)
	}
	return style.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	d := r.declaration(key)
	return d != nil && d.Important
}

// declaration returns the declaration in effect for key, or nil.
func (r Rule) declaration(key string) *css.Declaration {
	var last, important *css.Declaration
	for _, d := range r.Declarations {
		if d.Property != key {
			continue
		}
		last = d
		if d.Important {
			important = d
		}
	}
	if important != nil {
		return important
	}
	return last
}

var _ style.Rule = &Rule{}
