package layout

import "math"

// Unit conversions.
const (
	EMUPerInch  int64 = 914400
	EMUPerPoint int64 = 12700
)

// Page dimensions and flow margins.
var (
	PageWidth  = Inches(10)
	PageHeight = Inches(7.5)

	// UsableBottom is the lowest edge flowing content may reach.
	UsableBottom = PageHeight - Inches(1)

	// ContinuationTop is where content resumes on an overflow page.
	ContinuationTop = Inches(0.5)
)

// Inches converts inches to EMU.
func Inches(in float64) int64 {
	return int64(math.Round(in * float64(EMUPerInch)))
}

// Points converts typographic points to EMU.
func Points(pt float64) int64 {
	return int64(math.Round(pt * float64(EMUPerPoint)))
}

// Rect is an axis-aligned frame in EMU.
type Rect struct {
	X, Y, W, H int64
}

// Bottom returns the lower edge.
func (r Rect) Bottom() int64 { return r.Y + r.H }

// Right returns the right edge.
func (r Rect) Right() int64 { return r.X + r.W }

// Within reports whether r lies inside the page.
func (r Rect) Within(page Rect) bool {
	return r.X >= page.X && r.Y >= page.Y && r.Right() <= page.Right() && r.Bottom() <= page.Bottom()
}

// FullPage is the frame covering the whole page.
func FullPage() Rect {
	return Rect{W: PageWidth, H: PageHeight}
}
