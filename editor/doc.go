// Package editor provides a Bubble Tea annotation widget backed by the buffer,
// annotation, and markup packages.
//
// The widget shows a plain-text input pane, a status line, a styled preview,
// and the rendered markup. Selecting text and pressing a format key inserts a
// range into the annotation store; any edit to the text replaces the store's
// text and drops every range.
package editor
