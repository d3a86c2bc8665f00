// Package markup renders annotated text as HTML-style markup.
//
// Rendering is a pure function of a text and a set of annotation ranges. The
// output is always well-formed: when ranges of different kinds partially
// overlap, the inner element is closed and reopened around the outer
// boundary instead of letting tag pairs cross.
//
// The zero Renderer writes text runs verbatim, so user-entered '<' or '&'
// reach the output unescaped. That is only safe for sinks that do not
// interpret HTML. Set Renderer.Escape for web targets.
package markup
