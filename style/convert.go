package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var namedColors = map[string]color.RGBA{
	"black":  {0, 0, 0, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0, 0, 0xff},
	"green":  {0, 0xff, 0, 0xff},
	"blue":   {0, 0, 0xff, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
	"grey":   {0x80, 0x80, 0x80, 0xff},
	"yellow": {0xff, 0xff, 0, 0xff},
	"orange": {0xff, 0xa5, 0, 0xff},
	"clear":  {0, 0, 0, 0},
}

// Color converts a property to a color. Recognized are a small set of color
// names and hex notations #rgb, #rrggbb and #rrggbbaa.
// "default" and the null style result in nil, i.e. the renderer's default.
// Unrecognized values are an error.
func (p Property) Color() (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(string(p)))
	if s == "default" || s == "" {
		return nil, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return hexColor(s[1:])
	}
	return nil, fmt.Errorf("not a color: %q", p)
}

func hexColor(h string) (color.Color, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return nil, fmt.Errorf("not a hex color: #%s", h)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("not a hex color: #%s", h)
	}
	return color.RGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

// ColorString returns a hex notation for a color, or "default" for nil.
func ColorString(c color.Color) string {
	if c == nil {
		return "default"
	}
	r, g, b, a := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}

// Float converts a numeric property, e.g. "0.5" or "100".
func (p Property) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(string(p)), 64)
}

// Bool converts a boolean property. Accepted are the usual spellings
// ("true", "yes", "1", …); the null style is false.
func (p Property) Bool() (bool, error) {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "", "false", "no", "0", "off":
		return false, nil
	case "true", "yes", "1", "on":
		return true, nil
	}
	return false, fmt.Errorf("not a boolean: %q", p)
}
