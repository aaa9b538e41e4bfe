package grid

// Canvas is the drawing area in output units.
type Canvas struct {
	Width  float64
	Height float64
}

// NewCanvas returns a canvas of the given size in output units.
func NewCanvas(width, height float64) Canvas {
	return Canvas{Width: width, Height: height}
}

// CanvasInInches returns a canvas given in inches rendered at dpi.
func CanvasInInches(width, height, dpi float64) Canvas {
	return Canvas{Width: width * dpi, Height: height * dpi}
}

// Center returns the midpoint of the canvas.
func (c Canvas) Center() (x, y float64) {
	return c.Width / 2, c.Height / 2
}
