package atlas

import "github.com/chewxy/math32"

// Sample returns the texel value at normalized coordinates (u, v) as
// premultiplied RGBA in [0, 1]. Coverage masks report their value in every
// channel. Coordinates outside [0, 1] clamp to the edge.
//
// Sample makes *Atlas a prim.Texture.
func (a *Atlas) Sample(u, v float32) (r, g, b, alpha float32) {
	if a.cfg.filter == FilterNearest {
		x := clampInt(int(math32.Floor(u*float32(a.cfg.width))), 0, a.cfg.width-1)
		y := clampInt(int(math32.Floor(v*float32(a.cfg.height))), 0, a.cfg.height-1)
		return a.texel(x, y)
	}

	fx := u*float32(a.cfg.width) - 0.5
	fy := v*float32(a.cfg.height) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	x1 := clampInt(x0+1, 0, a.cfg.width-1)
	y1 := clampInt(y0+1, 0, a.cfg.height-1)
	x0 = clampInt(x0, 0, a.cfg.width-1)
	y0 = clampInt(y0, 0, a.cfg.height-1)

	r00, g00, b00, a00 := a.texel(x0, y0)
	r10, g10, b10, a10 := a.texel(x1, y0)
	r01, g01, b01, a01 := a.texel(x0, y1)
	r11, g11, b11, a11 := a.texel(x1, y1)

	return lerp2D(r00, r10, r01, r11, tx, ty),
		lerp2D(g00, g10, g01, g11, tx, ty),
		lerp2D(b00, b10, b01, b11, tx, ty),
		lerp2D(a00, a10, a01, a11, tx, ty)
}

// texel reads one texel as floats.
func (a *Atlas) texel(x, y int) (r, g, b, alpha float32) {
	if a.rgba != nil {
		i := a.rgba.PixOffset(x, y)
		p := a.rgba.Pix[i : i+4 : i+4]
		return float32(p[0]) / 255, float32(p[1]) / 255, float32(p[2]) / 255, float32(p[3]) / 255
	}
	v := float32(a.mask.Pix[a.mask.PixOffset(x, y)]) / 255
	return v, v, v, v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func lerp2D(v00, v10, v01, v11, tx, ty float32) float32 {
	return lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
}
