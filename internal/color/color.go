// Package color holds the float and byte color forms shared by the
// primitive evaluators, plus the sRGB transfer functions.
package color

// ColorF32 is a color with float32 components in [0,1]. Whether RGB is sRGB
// or linear depends on context; alpha is always linear.
type ColorF32 struct {
	R, G, B, A float32
}

// ColorU8 is a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}
