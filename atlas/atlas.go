// Package atlas stores pre-rasterized glyph images in a single texture and
// samples them for glyph quads.
//
// An Atlas has a fixed format chosen at creation: a single-channel coverage
// mask for ordinary glyphs or premultiplied RGBA for multi-color glyphs.
// Renderers keep one atlas of each kind and draw them in separate batches.
//
// Regions are packed with a shelf allocator and uploaded between frames.
// During a frame the atlas is read-only: Sample must not run concurrently
// with Add or Upload.
package atlas

import (
	"errors"
	"fmt"
	"image"
	"sync/atomic"

	"golang.org/x/image/draw"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/prim"
)

var (
	// ErrAtlasFull is returned when the atlas cannot fit the requested region.
	ErrAtlasFull = errors.New("atlas: atlas is full")

	// ErrRegionOutOfBounds is returned when a region is outside atlas bounds.
	ErrRegionOutOfBounds = errors.New("atlas: region is outside atlas bounds")

	// ErrNilImage is returned when uploading a nil image.
	ErrNilImage = errors.New("atlas: nil image")
)

// Format is the texel layout of an atlas.
type Format uint8

const (
	// FormatCoverageMask stores one 8-bit coverage value per texel.
	FormatCoverageMask Format = iota

	// FormatColorPremultiplied stores 8-bit premultiplied RGBA per texel.
	FormatColorPremultiplied
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatCoverageMask:
		return "CoverageMask"
	case FormatColorPremultiplied:
		return "ColorPremultiplied"
	default:
		return "Unknown"
	}
}

// GlyphMode returns the sampling mode glyph quads use with this format.
func (f Format) GlyphMode() prim.GlyphMode {
	if f == FormatColorPremultiplied {
		return prim.GlyphColor
	}
	return prim.GlyphMask
}

// TextureFormat returns the GPU texture format matching the texel layout.
func (f Format) TextureFormat() gputypes.TextureFormat {
	if f == FormatColorPremultiplied {
		return gputypes.TextureFormatRGBA8Unorm
	}
	return gputypes.TextureFormatR8Unorm
}

// BytesPerPixel returns the size of one texel.
func (f Format) BytesPerPixel() int {
	if f == FormatColorPremultiplied {
		return 4
	}
	return 1
}

// Atlas is a glyph texture with a shelf allocator.
type Atlas struct {
	format Format
	cfg    config
	alloc  *shelfAllocator

	// Exactly one of mask and rgba is set, matching format.
	mask *image.Alpha
	rgba *image.RGBA

	generation atomic.Uint64
}

// New creates an empty atlas of the given format.
func New(format Format, opts ...Option) *Atlas {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Atlas{
		format: format,
		cfg:    cfg,
		alloc:  newShelfAllocator(cfg.width, cfg.height, cfg.padding),
	}
	bounds := image.Rect(0, 0, cfg.width, cfg.height)
	if format == FormatColorPremultiplied {
		a.rgba = image.NewRGBA(bounds)
	} else {
		a.mask = image.NewAlpha(bounds)
	}

	prim.Logger().Info("atlas created",
		"label", cfg.label, "format", format, "width", cfg.width, "height", cfg.height)
	return a
}

// Format returns the texel format.
func (a *Atlas) Format() Format { return a.format }

// Filter returns the sampling filter.
func (a *Atlas) Filter() Filter { return a.cfg.filter }

// Label returns the debug label.
func (a *Atlas) Label() string { return a.cfg.label }

// Width returns the atlas width in texels.
func (a *Atlas) Width() int { return a.cfg.width }

// Height returns the atlas height in texels.
func (a *Atlas) Height() int { return a.cfg.height }

// Generation increases on every upload. GPU mirrors compare it to decide
// whether the texture must be re-uploaded.
func (a *Atlas) Generation() uint64 { return a.generation.Load() }

// Image returns the backing image: *image.Alpha for coverage masks,
// *image.RGBA for color atlases.
func (a *Atlas) Image() draw.Image {
	if a.rgba != nil {
		return a.rgba
	}
	return a.mask
}

// Pixels returns the raw texel bytes and the row stride.
func (a *Atlas) Pixels() (pix []byte, stride int) {
	if a.rgba != nil {
		return a.rgba.Pix, a.rgba.Stride
	}
	return a.mask.Pix, a.mask.Stride
}

// Allocate reserves a width×height region without uploading anything.
func (a *Atlas) Allocate(width, height int) (Region, error) {
	r := a.alloc.allocate(width, height)
	if !r.IsValid() {
		prim.Logger().Warn("atlas full",
			"label", a.cfg.label, "width", width, "height", height)
		return Region{}, fmt.Errorf("%w: cannot fit %dx%d", ErrAtlasFull, width, height)
	}
	return r, nil
}

// Upload copies src into region r. src is drawn at its natural size from
// its bounds' minimum point; mask atlases keep only the alpha channel.
func (a *Atlas) Upload(r Region, src image.Image) error {
	if src == nil {
		return ErrNilImage
	}
	if err := a.checkBounds(r); err != nil {
		return err
	}
	dr := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
	draw.Draw(a.Image(), dr, src, src.Bounds().Min, draw.Src)
	a.generation.Add(1)
	return nil
}

// UploadScaled resamples src to fill region r with a Catmull-Rom filter.
func (a *Atlas) UploadScaled(r Region, src image.Image) error {
	if src == nil {
		return ErrNilImage
	}
	if err := a.checkBounds(r); err != nil {
		return err
	}
	dr := image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
	draw.CatmullRom.Scale(a.Image(), dr, src, src.Bounds(), draw.Src, nil)
	a.generation.Add(1)
	return nil
}

// Add allocates a region the size of src, uploads it and returns the
// region together with its texture coordinates.
func (a *Atlas) Add(src image.Image) (Region, prim.UVRect, error) {
	if src == nil {
		return Region{}, prim.UVRect{}, ErrNilImage
	}
	b := src.Bounds()
	r, err := a.Allocate(b.Dx(), b.Dy())
	if err != nil {
		return Region{}, prim.UVRect{}, err
	}
	if err := a.Upload(r, src); err != nil {
		return Region{}, prim.UVRect{}, err
	}
	return r, a.UV(r), nil
}

func (a *Atlas) checkBounds(r Region) error {
	if !r.IsValid() || r.X < 0 || r.Y < 0 || r.X+r.Width > a.cfg.width || r.Y+r.Height > a.cfg.height {
		return fmt.Errorf("%w: %v", ErrRegionOutOfBounds, r)
	}
	return nil
}

// UV returns the normalized texture coordinates of a region. (U0, V0) is
// the region's top-left texel corner.
func (a *Atlas) UV(r Region) prim.UVRect {
	w := float32(a.cfg.width)
	h := float32(a.cfg.height)
	return prim.UVRect{
		U0: float32(r.X) / w,
		V0: float32(r.Y) / h,
		U1: float32(r.X+r.Width) / w,
		V1: float32(r.Y+r.Height) / h,
	}
}

// Glyph returns a glyph instance drawing region r of the atlas into dst.
// Color atlases are normally drawn with a white tint.
func (a *Atlas) Glyph(dst prim.Rect, r Region, tint prim.RGBA) prim.Instance {
	return prim.Glyph(dst, a.UV(r), tint)
}

// Reset forgets every allocation and clears the texels.
func (a *Atlas) Reset() {
	a.alloc.reset()
	pix, _ := a.Pixels()
	clear(pix)
	a.generation.Add(1)
}

// Utilization returns the fraction of the atlas area in use, in [0, 1].
func (a *Atlas) Utilization() float64 {
	_, used := a.alloc.stats()
	return float64(used) / float64(a.cfg.width*a.cfg.height)
}

// Len returns the number of regions allocated since the last Reset.
func (a *Atlas) Len() int {
	n, _ := a.alloc.stats()
	return n
}
