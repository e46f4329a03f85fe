package css

import (
	"fmt"
	"strings"
)

// DisplayMode is a type for the view property "display".
type DisplayMode uint16

// Flags for display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // view is not displayed at all
	BlockMode       DisplayMode = 0x0002 // view stacks with its siblings
	InlineMode      DisplayMode = 0x0004 // view flows with its siblings
	FlexMode        DisplayMode = 0x0040 // children are arranged by a flex layout
	GridMode        DisplayMode = 0x0080 // children are arranged in a grid
	InnerBlockMode  DisplayMode = 0x0200 // children stack
	InnerInlineMode DisplayMode = 0x0400 // children flow, e.g. text runs
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, FlexMode, GridMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	FlexMode:        "FlexMode",
	GridMode:        "GridMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp.Outer() == BlockMode
}

// IsHidden returns true for display mode `none`.
func (disp DisplayMode) IsHidden() bool {
	return disp.Contains(DisplayNone)
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	return disp.FullString()
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var modes []string
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			modes = append(modes, displayModeNames[m])
		}
	}
	if len(modes) == 0 {
		return displayModeNames[NoMode]
	}
	return strings.Join(modes, " ")
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	switch {
	case disp == NoMode:
		return "–"
	case disp.Contains(DisplayNone):
		return "∅"
	case disp.Contains(FlexMode):
		return "▤"
	case disp.Contains(GridMode):
		return "◰"
	case disp.Contains(BlockMode) || disp.Contains(InnerBlockMode):
		return "▩"
	case disp.Contains(InlineMode) || disp.Contains(InnerInlineMode):
		return "►"
	}
	return "?"
}

// ParseDisplay returns mode flags from a display property string (outer and
// inner). The empty string results in NoMode.
func ParseDisplay(display string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(display)) {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "block-inline":
		return BlockMode | InnerInlineMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "flex":
		return BlockMode | FlexMode, nil
	case "inline-flex":
		return InlineMode | FlexMode, nil
	case "grid":
		return BlockMode | GridMode, nil
	}
	return BlockMode, fmt.Errorf("unknown display mode: %s", display)
}
