// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Controls are the slider sub-controls that style rules can target.
type Controls int32

const (
	// UnknownControl is any sub-control this package does not interpret.
	UnknownControl Controls = iota

	// Groove is the track along which handles move.
	Groove

	// Bar is the filled segment between the first and last handle.
	Bar

	// Handle is a draggable handle.
	Handle
)

var controlNames = map[string]Controls{
	"groove":   Groove,
	"track":    Groove,
	"bar":      Bar,
	"sub-page": Bar,
	"handle":   Handle,
}

func (c Controls) String() string {
	switch c {
	case Groove:
		return "Groove"
	case Bar:
		return "Bar"
	case Handle:
		return "Handle"
	}
	return "Unknown"
}

// Selector is a parsed slider style selector of the form
// [Type::]Control[:state...], for example Groove:horizontal,
// RangeSlider::Bar:disabled or Slider::sub-page.
type Selector struct {

	// Type is the optional widget type name the rule is
	// restricted to; empty matches all sliders.
	Type string

	// Control is the sub-control the rule applies to.
	Control Controls

	// States are the lower-case pseudo-states that follow
	// the control, such as horizontal or disabled.
	States []string
}

// ParseSelector parses the given selector text.
func ParseSelector(sel string) Selector {
	var s Selector
	sel = strings.TrimSpace(sel)
	if tp, rest, ok := strings.Cut(sel, "::"); ok {
		s.Type = strings.TrimSpace(tp)
		sel = rest
	}
	parts := strings.Split(sel, ":")
	s.Control = controlNames[strings.ToLower(strings.TrimSpace(parts[0]))]
	for _, st := range parts[1:] {
		if st = strings.ToLower(strings.TrimSpace(st)); st != "" {
			s.States = append(s.States, st)
		}
	}
	return s
}

// Has returns whether the selector has the given pseudo-state.
func (s Selector) Has(state string) bool {
	for _, st := range s.States {
		if st == state {
			return true
		}
	}
	return false
}

// MatchesType returns whether the selector applies to a widget
// with any of the given type names. "*" and an empty type
// match every widget.
func (s Selector) MatchesType(typeNames ...string) bool {
	if s.Type == "" || s.Type == "*" {
		return true
	}
	for _, tn := range typeNames {
		if strings.EqualFold(s.Type, tn) {
			return true
		}
	}
	return false
}

// Rule is one selector of a parsed style rule together with
// its declarations, in stylesheet order.
type Rule struct {
	Selector     Selector
	Declarations []*css.Declaration
}

// Value returns the value of the last declaration of the given
// property in the rule, and whether it was found.
func (r *Rule) Value(property string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		d := r.Declarations[i]
		if strings.EqualFold(d.Property, property) {
			return d.Value, true
		}
	}
	return "", false
}

// funcColon stands in for colons inside parentheses while the
// sheet is tokenized, since the parser would otherwise treat the
// x1: of a gradient function as the start of a new declaration.
const funcColon = "∶"

// ParseSheet parses the given stylesheet text into rules,
// one for each selector of each qualified rule, in order.
// At-rules are ignored.
func ParseSheet(text string) ([]Rule, error) {
	pss, err := parser.Parse(protectFuncColons(text))
	if err != nil {
		return nil, fmt.Errorf("styles.ParseSheet: %w", err)
	}
	var rules []Rule
	for _, r := range pss.Rules {
		if r.Kind != css.QualifiedRule || len(r.Declarations) == 0 {
			continue
		}
		for _, d := range r.Declarations {
			d.Value = strings.ReplaceAll(d.Value, funcColon, ":")
		}
		for _, sel := range r.Selectors {
			rules = append(rules, Rule{Selector: ParseSelector(sel), Declarations: r.Declarations})
		}
	}
	return rules, nil
}

func protectFuncColons(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	depth := 0
	for _, r := range text {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case r == ':' && depth > 0:
			sb.WriteString(funcColon)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// ParseLength parses a pixel length such as 6px or 6.
func ParseLength(val string) (float32, error) {
	val = strings.TrimSpace(strings.ToLower(val))
	val = strings.TrimSuffix(val, "px")
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 32)
	if err != nil {
		return 0, fmt.Errorf("styles.ParseLength: invalid pixel length %q", val)
	}
	return float32(f), nil
}
