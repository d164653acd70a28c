package atlas

// Filter selects how Sample reconstructs texels.
type Filter uint8

const (
	// FilterLinear interpolates the four nearest texels (the sampler used
	// for glyph batches).
	FilterLinear Filter = iota

	// FilterNearest picks the texel containing the coordinate.
	FilterNearest
)

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterLinear:
		return "Linear"
	case FilterNearest:
		return "Nearest"
	default:
		return "Unknown"
	}
}

// Default atlas settings.
const (
	// DefaultSize is the default atlas edge length in texels.
	DefaultSize = 1024

	// MinSize is the smallest accepted atlas edge length.
	MinSize = 64

	// DefaultPadding is the gap left between packed regions so linear
	// filtering never bleeds into a neighbor.
	DefaultPadding = 1
)

type config struct {
	width, height int
	padding       int
	filter        Filter
	label         string
}

func defaultConfig() config {
	return config{
		width:   DefaultSize,
		height:  DefaultSize,
		padding: DefaultPadding,
		filter:  FilterLinear,
	}
}

// Option configures an Atlas.
type Option func(*config)

// WithSize sets the atlas dimensions. Values below MinSize are raised to
// MinSize.
func WithSize(width, height int) Option {
	return func(c *config) {
		c.width = max(width, MinSize)
		c.height = max(height, MinSize)
	}
}

// WithPadding sets the gap between packed regions. Negative values are
// treated as zero.
func WithPadding(padding int) Option {
	return func(c *config) {
		c.padding = max(padding, 0)
	}
}

// WithFilter sets the sampling filter.
func WithFilter(f Filter) Option {
	return func(c *config) {
		c.filter = f
	}
}

// WithLabel sets a debug label, used in log records and GPU resources.
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}
