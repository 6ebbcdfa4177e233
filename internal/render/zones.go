package render

import (
	"math"

	"codeberg.org/mutker/ledmeter/internal/led"
)

const zoneCount = 4

// Palette partitions the strip into four equal contiguous quarters, each with
// a fixed base color, green through red from the low end. An LED exactly on a
// quarter boundary belongs to the higher zone.
type Palette struct {
	colors [zoneCount]led.Color
	count  int
}

func NewPalette(count int) Palette {
	return Palette{
		colors: [zoneCount]led.Color{led.Green, led.Yellow, led.Orange, led.Red},
		count:  count,
	}
}

// LitCount maps a level in [0,100] to the number of lit LEDs, rounding
// half-up and clamping to [0, count].
func (p Palette) LitCount(level float64) int {
	lit := int(math.Floor(level/100*float64(p.count) + 0.5))
	if lit < 0 {
		return 0
	}
	if lit > p.count {
		return p.count
	}

	return lit
}

// ColorAt returns the base color of the zone owning LED position i.
func (p Palette) ColorAt(i int) led.Color {
	zone := i * zoneCount / p.count
	if zone >= zoneCount {
		zone = zoneCount - 1
	}

	return p.colors[zone]
}

// Base builds the pre-effects frame: the first litCount LEDs carry their zone
// color, the remainder are off.
func (p Palette) Base(litCount int) led.Frame {
	frame := led.Blank(p.count)
	for i := 0; i < litCount && i < p.count; i++ {
		frame[i] = p.ColorAt(i)
	}

	return frame
}
