package led

// Color is a single RGB pixel with 8-bit channels.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	Off    = Color{}
	Green  = Color{R: 0, G: 255, B: 0}
	Yellow = Color{R: 255, G: 255, B: 0}
	Orange = Color{R: 255, G: 165, B: 0}
	Red    = Color{R: 255, G: 0, B: 0}
	Blue   = Color{R: 0, G: 0, B: 255}
	White  = Color{R: 255, G: 255, B: 255}
)

// Scale multiplies every channel by factor and clamps to the 8-bit range.
func (c Color) Scale(factor float64) Color {
	return Color{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

// IsOff reports whether all channels are zero.
func (c Color) IsOff() bool {
	return c == Color{}
}

func scaleChannel(v uint8, factor float64) uint8 {
	scaled := int(float64(v) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}

	return uint8(scaled)
}

// Frame is an ordered pixel buffer, one entry per LED on the strip.
type Frame []Color

// Blank returns an all-off frame of n pixels.
func Blank(n int) Frame {
	return make(Frame, n)
}

// Fill sets every pixel to c.
func (f Frame) Fill(c Color) {
	for i := range f {
		f[i] = c
	}
}

// IsBlank reports whether every pixel is off.
func (f Frame) IsBlank() bool {
	for _, c := range f {
		if !c.IsOff() {
			return false
		}
	}

	return true
}

func packRGB(c Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
