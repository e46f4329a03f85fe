package view

import (
	"github.com/raitom/teacup/style"
)

// View kinds. Selectors refer to views by kind, e.g. "label.title".
const (
	KindView       = "view"
	KindLabel      = "label"
	KindButton     = "button"
	KindImageView  = "imageview"
	KindTextField  = "textfield"
	KindScrollView = "scrollview"
)

// Values "default" are left to the renderer, which will use its own
// defaults for them.
var viewDefaults = map[string]style.Property{
	"display":                    "block",
	"position":                   "static",
	"visibility":                 "visible",
	"color":                      "default",
	"background-color":           "default",
	"width":                      "auto",
	"height":                     "auto",
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-color":           "default",
	"border-left-color":          "default",
	"border-right-color":         "default",
	"border-bottom-color":        "default",
	"border-top-width":           "0",
	"border-left-width":          "0",
	"border-right-width":         "0",
	"border-bottom-width":        "0",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-left-radius":  "0",
	"border-bottom-right-radius": "0",
	"direction":                  "ltr",
	"white-space":                "normal",
}

var labelDefaults = map[string]style.Property{
	"display":    "inline",
	"text-align": "left",
	"lines":      "1",
}

var buttonDefaults = map[string]style.Property{
	"display":    "inline-block",
	"text-align": "center",
	"enabled":    "true",
}

var imageViewDefaults = map[string]style.Property{
	"content-mode": "scale-to-fit",
}

var textFieldDefaults = map[string]style.Property{
	"display":    "inline-block",
	"text-align": "left",
	"editable":   "true",
	"secure":     "false",
}

var scrollViewDefaults = map[string]style.Property{
	"overflow":         "scroll",
	"scroll-direction": "vertical",
	"paging":           "false",
}

// --- Label -----------------------------------------------------------------

// Label is a view showing a line of text.
type Label struct {
	View
}

// NewLabel creates a label.
func NewLabel() *Label {
	l := &Label{}
	l.InitNode()
	return l
}

func (l *Label) InitNode() {
	l.initAs(l, KindLabel, labelDefaults)
}

// Text returns property "text".
func (l *Label) Text() string {
	return l.PropertyValue("text").String()
}

// Lines returns the maximum number of lines, 0 meaning unlimited.
func (l *Label) Lines() int {
	n, err := l.PropertyValue("lines").Float()
	if err != nil || n < 0 {
		return 1
	}
	return int(n)
}

// --- Button ----------------------------------------------------------------

// Button is a view reacting to taps. Event handling is left to the client.
type Button struct {
	View
}

// NewButton creates a button.
func NewButton() *Button {
	b := &Button{}
	b.InitNode()
	return b
}

func (b *Button) InitNode() {
	b.initAs(b, KindButton, buttonDefaults)
}

// Title returns property "title", falling back to "text".
func (b *Button) Title() string {
	if t := b.PropertyValue("title"); !t.IsEmpty() {
		return t.String()
	}
	return b.PropertyValue("text").String()
}

// IsEnabled returns property "enabled".
func (b *Button) IsEnabled() bool {
	enabled, err := b.PropertyValue("enabled").Bool()
	return err != nil || enabled
}

// --- ImageView -------------------------------------------------------------

// ImageView is a view showing an image, referred to by name.
type ImageView struct {
	View
}

// NewImageView creates an image view.
func NewImageView() *ImageView {
	iv := &ImageView{}
	iv.InitNode()
	return iv
}

func (iv *ImageView) InitNode() {
	iv.initAs(iv, KindImageView, imageViewDefaults)
}

// Image returns property "image", the name of the image to show.
func (iv *ImageView) Image() string {
	return iv.PropertyValue("image").String()
}

// ContentMode returns property "content-mode".
func (iv *ImageView) ContentMode() string {
	return iv.PropertyValue("content-mode").String()
}

// --- TextField -------------------------------------------------------------

// TextField is a view for editing a line of text.
type TextField struct {
	View
}

// NewTextField creates a text field.
func NewTextField() *TextField {
	tf := &TextField{}
	tf.InitNode()
	return tf
}

func (tf *TextField) InitNode() {
	tf.initAs(tf, KindTextField, textFieldDefaults)
}

// Text returns property "text".
func (tf *TextField) Text() string {
	return tf.PropertyValue("text").String()
}

// Placeholder returns property "placeholder".
func (tf *TextField) Placeholder() string {
	return tf.PropertyValue("placeholder").String()
}

// IsEditable returns property "editable".
func (tf *TextField) IsEditable() bool {
	editable, err := tf.PropertyValue("editable").Bool()
	return err != nil || editable
}

// IsSecure returns property "secure", set for password entry.
func (tf *TextField) IsSecure() bool {
	secure, _ := tf.PropertyValue("secure").Bool()
	return secure
}

// --- ScrollView ------------------------------------------------------------

// ScrollView is a view whose subviews may exceed its frame.
type ScrollView struct {
	View
}

// NewScrollView creates a scroll view.
func NewScrollView() *ScrollView {
	sv := &ScrollView{}
	sv.InitNode()
	return sv
}

func (sv *ScrollView) InitNode() {
	sv.initAs(sv, KindScrollView, scrollViewDefaults)
}

// ScrollDirection returns property "scroll-direction", which is either
// "vertical", "horizontal" or "both".
func (sv *ScrollView) ScrollDirection() string {
	return sv.PropertyValue("scroll-direction").String()
}

// IsPaging returns property "paging".
func (sv *ScrollView) IsPaging() bool {
	paging, _ := sv.PropertyValue("paging").Bool()
	return paging
}
