package export

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"equilib/internal/analysis"
	"equilib/internal/viz"
)

// Pixel scale per Braille sub-pixel when rasterizing.
const pngScale = 4

var (
	pngBackground = color.RGBA{10, 10, 10, 255}
	pngCurve      = color.RGBA{120, 170, 255, 255}
	pngStable     = color.RGBA{40, 200, 100, 255}
	pngUnstable   = color.RGBA{235, 70, 70, 255}
	pngNeutral    = color.RGBA{170, 170, 170, 255}
)

// braille dot-to-bit mapping, matching the canvas layout.
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// FigureToImage rasterizes the three panels of a figure into one stacked
// RGBA image at a fixed resolution derived from the canvas size.
func FigureToImage(fig *viz.Figure) *image.RGBA {
	if fig.Panels[0].Canvas == nil {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	panelW := fig.Panels[0].Canvas.Width * 2 * pngScale
	panelH := fig.Panels[0].Canvas.Height * 4 * pngScale
	gap := 4 * pngScale
	totalH := 3*panelH + 4*gap

	img := image.NewRGBA(image.Rect(0, 0, panelW, totalH))
	for y := 0; y < totalH; y++ {
		for x := 0; x < panelW; x++ {
			img.SetRGBA(x, y, pngBackground)
		}
	}

	for i, panel := range fig.Panels {
		top := gap + i*(panelH+gap)
		drawCanvas(img, panel.Canvas, top)
		drawMarkers(img, panel, top)
	}
	return img
}

func markerColor(s analysis.Stability) color.RGBA {
	switch s {
	case analysis.Stable:
		return pngStable
	case analysis.Unstable:
		return pngUnstable
	default:
		return pngNeutral
	}
}

// drawMarkers recolors the equilibrium markers over the monochrome curve.
func drawMarkers(img *image.RGBA, panel viz.Panel, top int) {
	for _, m := range panel.Markers {
		px, py, ok := panel.Canvas.Project(m.X, m.Y)
		if !ok {
			continue
		}
		col := markerColor(m.Stability)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				fillBlock(img, (px+dx)*pngScale, top+(py+dy)*pngScale, col)
			}
		}
	}
}

func drawCanvas(img *image.RGBA, c *viz.Canvas, top int) {
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					px := (col*2 + dx) * pngScale
					py := top + (row*4+dy)*pngScale
					fillBlock(img, px, py, pngCurve)
				}
			}
		}
	}
}

func fillBlock(img *image.RGBA, x, y int, col color.RGBA) {
	for dy := 0; dy < pngScale; dy++ {
		for dx := 0; dx < pngScale; dx++ {
			img.SetRGBA(x+dx, y+dy, col)
		}
	}
}

// WritePNG rasterizes the figure and writes it to path.
func WritePNG(path string, fig *viz.Figure) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, FigureToImage(fig))
}
