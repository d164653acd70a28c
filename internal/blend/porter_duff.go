// Package blend implements the Porter-Duff operators used to composite
// evaluated primitive samples into a framebuffer.
//
// All operations work on premultiplied RGBA bytes, the layout of
// image.RGBA pixels.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"fmt"
	"strings"
)

// BlendMode represents a Porter-Duff compositing operation.
type BlendMode uint8

const (
	BlendClear           BlendMode = iota // Result: 0
	BlendSource                           // Result: S
	BlendDestination                      // Result: D
	BlendSourceOver                       // Result: S + D*(1-Sa) [default]
	BlendDestinationOver                  // Result: S*(1-Da) + D
	BlendDestinationOut                   // Result: D*(1-Sa)
	BlendXor                              // Result: S*(1-Da) + D*(1-Sa)
	BlendPlus                             // Result: S + D (clamped)
	blendModeCount
)

var modeNames = [blendModeCount]string{
	BlendClear:           "clear",
	BlendSource:          "source",
	BlendDestination:     "destination",
	BlendSourceOver:      "source-over",
	BlendDestinationOver: "destination-over",
	BlendDestinationOut:  "destination-out",
	BlendXor:             "xor",
	BlendPlus:            "plus",
}

// String returns the CSS-style operator name.
func (m BlendMode) String() string {
	if m < blendModeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// ParseBlendMode looks up a mode by its String name, case-insensitively.
func ParseBlendMode(name string) (BlendMode, error) {
	for m, n := range modeNames {
		if strings.EqualFold(n, name) {
			return BlendMode(m), nil
		}
	}
	return BlendSourceOver, fmt.Errorf("blend: unknown mode %q", name)
}

// BlendFunc blends one premultiplied source pixel into a destination pixel.
type BlendFunc func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetBlendFunc returns the blend function for the given mode.
// Unknown modes fall back to source-over.
func GetBlendFunc(mode BlendMode) BlendFunc {
	switch mode {
	case BlendClear:
		return blendClear
	case BlendSource:
		return blendSource
	case BlendDestination:
		return blendDestination
	case BlendDestinationOver:
		return blendDestinationOver
	case BlendDestinationOut:
		return blendDestinationOut
	case BlendXor:
		return blendXor
	case BlendPlus:
		return blendPlus
	default:
		return blendSourceOver
	}
}

// BlendSpan blends n premultiplied RGBA pixels of src into dst.
func BlendSpan(dst, src []byte, n int, mode BlendMode) {
	fn := GetBlendFunc(mode)
	for i := 0; i < n; i++ {
		o := i * 4
		dst[o], dst[o+1], dst[o+2], dst[o+3] = fn(
			src[o], src[o+1], src[o+2], src[o+3],
			dst[o], dst[o+1], dst[o+2], dst[o+3],
		)
	}
}

func blendClear(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func blendSource(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func blendDestination(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendDestinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return addClamp(mulDiv255(sr, invDa), dr),
		addClamp(mulDiv255(sg, invDa), dg),
		addClamp(mulDiv255(sb, invDa), db),
		addClamp(mulDiv255(sa, invDa), da)
}

// blendDestinationOut erases destination where source is opaque.
// Formula: D * (1 - Sa)
func blendDestinationOut(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// blendXor keeps source and destination where they don't overlap.
// Formula: S * (1 - Da) + D * (1 - Sa)
func blendXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// blendPlus adds source and destination.
// Formula: min(S + D, 255)
func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}
