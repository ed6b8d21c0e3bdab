package usecase

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColors_BasePaletteUnchanged(t *testing.T) {
	for _, n := range []int{0, 1, 5, 10} {
		colors := Colors(n)
		require.Len(t, colors, n)
		assert.Equal(t, basePalette[:n], colors)
	}
}

func TestColors_Deterministic(t *testing.T) {
	assert.Equal(t, Colors(25), Colors(25))
}

func TestColors_ExtendsBeyondBase(t *testing.T) {
	colors := Colors(14)
	require.Len(t, colors, 14)

	// The first ten entries are the base palette; extended entries cycle
	// through it brightened, so they must differ from their base color.
	assert.Equal(t, basePalette, colors[:10])
	hexPattern := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for i := 10; i < 14; i++ {
		assert.Regexp(t, hexPattern, colors[i])
		assert.NotEqual(t, basePalette[i%10], colors[i])
	}
}

func TestScaleColor_ClampsChannels(t *testing.T) {
	assert.Equal(t, "#FFFFFF", scaleColor("#FFFFFF", 1.5))
	assert.Equal(t, "#000000", scaleColor("#000000", 1.5))
	// 0x80 * 1.2 = 0x99
	assert.Equal(t, "#999999", scaleColor("#808080", 1.2))
}
