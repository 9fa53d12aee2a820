package viz

import (
	"math"
	"strings"
)

// Braille patterns: 2x4 dots per character cell, Unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Braille pixel canvas with an attached world-coordinate
// window. Pixel resolution is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	xMin, xMax    float64
	yMin, yMax    float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		xMax:   1,
		yMax:   1,
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// SetWindow fixes the world-coordinate rectangle mapped onto the canvas.
func (c *Canvas) SetWindow(xMin, xMax, yMin, yMax float64) {
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		yMax = yMin + 1
	}
	c.xMin, c.xMax = xMin, xMax
	c.yMin, c.yMax = yMin, yMax
}

func (c *Canvas) pixelWidth() int  { return c.Width * 2 }
func (c *Canvas) pixelHeight() int { return c.Height * 4 }

func (c *Canvas) toPixel(x, y float64) (int, int) {
	px := int((x - c.xMin) / (c.xMax - c.xMin) * float64(c.pixelWidth()-1))
	py := int((y - c.yMin) / (c.yMax - c.yMin) * float64(c.pixelHeight()-1))
	return px, c.pixelHeight() - 1 - py
}

// Project maps world coordinates to sub-pixel coordinates. ok is false
// when the point falls outside the window.
func (c *Canvas) Project(x, y float64) (px, py int, ok bool) {
	if x < c.xMin || x > c.xMax || y < c.yMin || y > c.yMax {
		return 0, 0, false
	}
	px, py = c.toPixel(x, y)
	return px, py, true
}

// Set lights the pixel at sub-pixel coordinates (x, y).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Clear resets every cell to the empty Braille character.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a pixel line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// PlotFunc draws y = f(x) across the window, skipping samples that leave
// the window vertically.
func (c *Canvas) PlotFunc(f func(float64) float64) {
	samples := c.pixelWidth()
	prevOK := false
	var prevX, prevY int

	for i := 0; i < samples; i++ {
		x := c.xMin + (c.xMax-c.xMin)*float64(i)/float64(samples-1)
		y := f(x)
		if math.IsNaN(y) || y < c.yMin || y > c.yMax {
			prevOK = false
			continue
		}
		px, py := c.toPixel(x, y)
		if prevOK {
			c.DrawLine(prevX, prevY, px, py)
		} else {
			c.Set(px, py)
		}
		prevX, prevY = px, py
		prevOK = true
	}
}

// HLine draws a horizontal rule at world-coordinate y.
func (c *Canvas) HLine(y float64) {
	if y < c.yMin || y > c.yMax {
		return
	}
	_, py := c.toPixel(c.xMin, y)
	for px := 0; px < c.pixelWidth(); px++ {
		if px%3 != 2 { // dashed
			c.Set(px, py)
		}
	}
}

// Marker draws a small filled diamond at world coordinates (x, y).
func (c *Canvas) Marker(x, y float64) {
	if x < c.xMin || x > c.xMax || y < c.yMin || y > c.yMax {
		return
	}
	px, py := c.toPixel(x, y)
	for dy := -2; dy <= 2; dy++ {
		span := 2 - absInt(dy)
		for dx := -span; dx <= span; dx++ {
			c.Set(px+dx, py+dy)
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
