package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// previewColumns is the terminal width of the -term preview.
const previewColumns = 80

// preview renders img as rows of upper-half blocks: each terminal cell
// shows two vertically stacked pixels, the top one as foreground and the
// bottom one as background.
func preview(img image.Image, cols int) string {
	b := img.Bounds()
	if cols <= 0 || b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}
	cols = min(cols, b.Dx())
	rows := max(b.Dy()*cols/b.Dx()/2, 1)

	small := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	var sb strings.Builder
	for row := range rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for x := range cols {
			top := small.RGBAAt(x, row*2)
			bottom := small.RGBAAt(x, row*2+1)
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom))).
				Render("▀")
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// hexColor formats a premultiplied pixel as #rrggbb composited over black.
func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
