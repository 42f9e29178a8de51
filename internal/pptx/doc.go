// Package pptx serializes laid-out pages into an Office Open XML
// presentation.
//
// The package writes only what the layout engine produces: absolutely
// positioned rectangles, text boxes, and pictures on blank slides, plus
// speaker notes. Every slide uses a single blank layout so viewers never
// inject placeholder text.
package pptx
