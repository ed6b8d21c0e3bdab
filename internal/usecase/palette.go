package usecase

import (
	"fmt"
	"strconv"
)

// basePalette is the fixed chart palette. Batches of up to ten users get
// these colors unchanged, in order.
var basePalette = []string{
	"#36A2EB",
	"#FF6384",
	"#4BC0C0",
	"#FF9F40",
	"#9966FF",
	"#FFCD56",
	"#C9CBCF",
	"#2ECC71",
	"#E74C3C",
	"#3498DB",
}

// Colors returns a deterministic sequence of n hex colors for comparison
// charts. Indexes beyond the base palette cycle through it with a
// monotonically increasing brightness multiplier, channel-wise, clamped
// at 0xFF. No randomness: equal n, equal sequence.
func Colors(n int) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if i < len(basePalette) {
			colors = append(colors, basePalette[i])
			continue
		}
		factor := 0.8 + float64(i)/float64(len(basePalette))*0.4
		colors = append(colors, scaleColor(basePalette[i%len(basePalette)], factor))
	}
	return colors
}

// scaleColor multiplies each RGB channel of a "#RRGGBB" color by factor.
func scaleColor(hex string, factor float64) string {
	r, _ := strconv.ParseUint(hex[1:3], 16, 16)
	g, _ := strconv.ParseUint(hex[3:5], 16, 16)
	b, _ := strconv.ParseUint(hex[5:7], 16, 16)
	return fmt.Sprintf("#%02X%02X%02X", scaleChannel(r, factor), scaleChannel(g, factor), scaleChannel(b, factor))
}

func scaleChannel(c uint64, factor float64) uint64 {
	scaled := uint64(float64(c) * factor)
	if scaled > 0xFF {
		return 0xFF
	}
	return scaled
}
