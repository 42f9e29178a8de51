// Package layout turns slide definitions into positioned pages.
//
// A Renderer owns the collaborators a layout needs (image source, logger)
// and exposes one method per slide kind. Every method takes the slide, the
// resolved Style and a Cursor, and returns the pages it produced together
// with the cursor after its last line. Renderers never mutate their inputs.
//
// Geometry is expressed in EMU (English Metric Units, 914400 per inch), the
// native unit of presentation files, so pages can be serialized without
// conversion. The page is 10in x 7.5in.
//
// Multi-item slides (experience, education, projects) flow items down the
// page and continue on a fresh page, with the same background and without
// the heading, whenever the next line would cross the usable bottom edge.
package layout
