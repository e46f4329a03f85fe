package style

import (
	"sort"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Resolve computes the style-derived properties for a target node: every rule
// of the stylesheet whose selector matches the target contributes its
// declarations. Declarations are applied in cascade order, i.e. normal
// declarations before important ones, and within each class by ascending
// selector specificity and then by source order. Later declarations win.
//
// Selectors are matched against a proxy element chain mirroring the target
// and its ancestors: the element name is the target's kind, the class
// attribute its stylename. Sibling relations are not mirrored, thus
// structural pseudo-classes (:first-child etc.) see each node as an only
// child.
//
// A nil or empty stylesheet resolves to an empty property map. Rules with
// selectors which cannot be parsed are skipped.
func Resolve(sheet Stylesheet, target Target) *PropertyMap {
	pmap := NewPropertyMap()
	if sheet == nil || target == nil || sheet.Empty() {
		return pmap
	}
	proxy := proxyChain(target)
	var matches []ruleMatch
	for i, rule := range sheet.Rules() {
		sels, err := compiled(rule.Selector())
		if err != nil {
			tracer().Infof("styling: skipping rule with selector %q: %v", rule.Selector(), err)
			continue
		}
		matched := false
		var spec cascadia.Specificity
		for _, sel := range sels {
			if sel.Match(proxy) {
				if s := sel.Specificity(); !matched || spec.Less(s) {
					spec = s
				}
				matched = true
			}
		}
		if matched {
			tracer().Debugf("styling: rule %q matches %s.%s", rule.Selector(), target.Kind(), target.Stylename())
			matches = append(matches, ruleMatch{rule: rule, order: i, spec: spec})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].spec == matches[j].spec {
			return matches[i].order < matches[j].order
		}
		return matches[i].spec.Less(matches[j].spec)
	})
	for _, important := range []bool{false, true} {
		for _, m := range matches {
			for _, key := range m.rule.Properties() {
				if m.rule.IsImportant(key) == important {
					setDeclaration(pmap, key, m.rule.Value(key))
				}
			}
		}
	}
	return pmap
}

type ruleMatch struct {
	rule  Rule
	order int
	spec  cascadia.Specificity
}

// setDeclaration sets a property, splitting shorthands into longhands.
func setDeclaration(pmap *PropertyMap, key string, value Property) {
	key = strings.ToLower(strings.TrimSpace(key))
	if IsCompound(key) {
		kvs, err := SplitCompoundProperty(key, value)
		if err == nil {
			for _, kv := range kvs {
				pmap.Set(kv.Key, kv.Value)
			}
			return
		}
		tracer().Infof("styling: %v", err)
	}
	pmap.Set(key, value)
}

// proxyChain creates HTML element nodes for target and its ancestors and
// returns the node for target.
func proxyChain(target Target) *html.Node {
	var chain []Target
	for t := target; t != nil; t = t.ParentTarget() {
		chain = append(chain, t)
	}
	var parent, node *html.Node
	for i := len(chain) - 1; i >= 0; i-- {
		node = proxyElement(chain[i])
		if parent != nil {
			parent.AppendChild(node)
		}
		parent = node
	}
	return node
}

func proxyElement(t Target) *html.Node {
	kind := strings.ToLower(t.Kind())
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     kind,
		DataAtom: atom.Lookup([]byte(kind)),
	}
	if name := t.Stylename(); name != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: name}}
	}
	return n
}

// Compiled selector groups, keyed by selector text.
var selectorCache sync.Map // string -> cascadia.SelectorGroup

func compiled(selector string) (cascadia.SelectorGroup, error) {
	if sels, ok := selectorCache.Load(selector); ok {
		return sels.(cascadia.SelectorGroup), nil
	}
	sels, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, err
	}
	selectorCache.Store(selector, sels)
	return sels, nil
}
